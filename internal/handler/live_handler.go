package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// LiveHandler streams review and reaction events of one dive site over a
// WebSocket. Each connection owns its own subscription.
type LiveHandler struct {
	siteService service.SiteService
	subscriber  service.EventSubscriber
	upgrader    websocket.Upgrader
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewLiveHandler creates a LiveHandler. allowedOrigins follows the CORS
// configuration; "*" accepts any origin.
func NewLiveHandler(siteService service.SiteService, subscriber service.EventSubscriber, allowedOrigins []string, m *metrics.Metrics, logger *zap.Logger) *LiveHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveHandler{
		siteService: siteService,
		subscriber:  subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		metrics: m,
		logger:  logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[strings.TrimSuffix(o, "/")] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// non-browser clients send no origin
		return origin == "" || set["*"] || set[origin]
	}
}

// Stream godoc
// @Summary      Live review updates
// @Description  Upgrades to a WebSocket that receives review_created and reaction_updated
// @Description  events for the dive site as JSON text messages.
// @Tags         live
// @Param        slug path string true "Dive site slug"
// @Success      101 {object} dto.LiveEvent "Switching protocols"
// @Failure      404 {object} response.ErrorResponse "Dive site not found"
// @Failure      503 {object} response.ErrorResponse "Live updates not configured"
// @Router       /dives/{slug}/live [get]
func (h *LiveHandler) Stream(c *gin.Context) {
	site, err := h.siteService.Lookup(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, closeSub, err := h.subscriber.Subscribe(ctx, site.ID)
	if err != nil {
		if errors.Is(err, service.ErrLiveUnavailable) {
			response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeUnavailable, "Live updates are not available")
			return
		}
		h.logger.Error("Failed to subscribe to live events", zap.String("site_id", site.ID.String()), zap.Error(err))
		response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeUnavailable, "Live updates are not available")
		return
	}
	defer closeSub()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the error response
		h.logger.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.LiveConnectionOpened()
		defer h.metrics.LiveConnectionClosed()
	}

	go h.readPump(conn, cancel)
	h.writePump(ctx, conn, events)
}

// readPump discards client messages and keeps the read deadline fresh. Any
// read error ends the stream.
func (h *LiveHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (h *LiveHandler) writePump(ctx context.Context, conn *websocket.Conn, events <-chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		}
	}
}
