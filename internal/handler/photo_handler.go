package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/service"
)

type PhotoHandler struct {
	photoService service.PhotoService
}

func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// UploadPhoto godoc
// @Summary      Upload a review photo
// @Description  Stores an image (jpeg, png, gif, webp, heic; at most 10MB) and returns the
// @Description  storage_path to pass in a review's photos. Photos not attached to a review
// @Description  are removed once the upload expires.
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Dive site slug"
// @Param        file formData file true "Image file"
// @Success      201 {object} response.SuccessResponse{data=dto.PhotoUploadResponse}
// @Failure      400 {object} response.ErrorResponse "Missing or invalid file"
// @Failure      401 {object} response.ErrorResponse "Authentication required"
// @Failure      404 {object} response.ErrorResponse "Dive site not found"
// @Failure      503 {object} response.ErrorResponse "Photo storage not configured"
// @Router       /dives/{slug}/photos [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	uploaderID, ok := requireViewer(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File is required")
		return
	}
	if header.Size > service.MaxPhotoSize {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read file")
		return
	}
	defer file.Close()

	result, err := h.photoService.Upload(c.Request.Context(), c.Param("slug"), uploaderID, &service.PhotoFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}
