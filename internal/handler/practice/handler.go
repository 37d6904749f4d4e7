// Package practice serves the doctor-mode screens that are not tied to a
// single consultation: the patient roster and the refill queue.
package practice

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/appointment"
	"github.com/jwalitptl/medlink-api/internal/service/prescription"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	appointments  *appointment.Service
	prescriptions *prescription.Service
}

func NewHandler(appointments *appointment.Service, prescriptions *prescription.Service) *Handler {
	return &Handler{appointments: appointments, prescriptions: prescriptions}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	practice := r.Group("/practice")
	{
		practice.GET("/patients", h.ListPatients)
		practice.GET("/refills", h.ListRefillRequests)
		practice.POST("/refills/:id/review", h.ReviewRefill)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.appointments.UniquePatients(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, patients)
}

func (h *Handler) ListRefillRequests(c *gin.Context) {
	queue, err := h.prescriptions.RefillQueue(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, queue)
}

func (h *Handler) ReviewRefill(c *gin.Context) {
	var req model.ReviewRefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	p, err := h.prescriptions.ReviewRefill(c.Request.Context(), c.Param("id"), req.Decision)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}
