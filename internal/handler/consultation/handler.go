package consultation

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/portal"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *portal.Service
}

func NewHandler(service *portal.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	consultation := r.Group("/consultation")
	{
		consultation.POST("/join/:appointmentId", h.JoinCall)
		consultation.POST("/messages", h.SendMessage)
		consultation.POST("/end", h.EndCall)
		consultation.POST("/notes", h.SaveNotes)
		consultation.DELETE("/summary", h.DiscardSummary)
	}
}

// RegisterSearchRoutes mounts summarization, which calls the AI gateway.
func (h *Handler) RegisterSearchRoutes(r *gin.RouterGroup) {
	r.POST("/consultation/summary", h.Summarize)
}

func (h *Handler) JoinCall(c *gin.Context) {
	view, err := h.service.JoinCall(c.Request.Context(), middleware.SessionID(c), c.Param("appointmentId"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	view, err := h.service.SendMessage(c.Request.Context(), middleware.SessionID(c), req.Text)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

// EndCall hangs up. ?prescribe=true ends a doctor's call with a prescription.
func (h *Handler) EndCall(c *gin.Context) {
	prescribe := c.Query("prescribe") == "true"

	result, err := h.service.EndCall(c.Request.Context(), middleware.SessionID(c), prescribe)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

func (h *Handler) Summarize(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, summary)
}

func (h *Handler) SaveNotes(c *gin.Context) {
	var req model.SaveNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	result, err := h.service.SaveNotes(c.Request.Context(), middleware.SessionID(c), req.Notes)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, result)
}

func (h *Handler) DiscardSummary(c *gin.Context) {
	view, err := h.service.DiscardSummary(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}
