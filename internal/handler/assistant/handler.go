package assistant

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/portal"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

// Handler serves the symptom checker chat on the dashboard.
type Handler struct {
	service *portal.Service
}

func NewHandler(service *portal.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/assistant/chat", h.GetChat)
	r.DELETE("/assistant/chat", h.ResetChat)
}

// RegisterSearchRoutes mounts the model-backed chat turn.
func (h *Handler) RegisterSearchRoutes(r *gin.RouterGroup) {
	r.POST("/assistant/chat", h.SendMessage)
}

func (h *Handler) GetChat(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view.Session.SymptomChat)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req model.SymptomCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	chat, err := h.service.SymptomCheck(c.Request.Context(), middleware.SessionID(c), req.Message)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, chat)
}

func (h *Handler) ResetChat(c *gin.Context) {
	view, err := h.service.ResetSymptomChat(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view.Session.SymptomChat)
}
