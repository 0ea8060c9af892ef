package dto

// PhotoUploadResponse is returned after a photo is stored. StoragePath is the
// value to send back in CreateReviewRequest.Photos.
type PhotoUploadResponse struct {
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type"`
}
