package appointment

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/service/appointment"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
		appointments.POST("/:id/complete", h.CompleteAppointment)
	}
}

// ListAppointments returns upcoming and past appointments. With patient_id
// set it returns that patient's appointments as a flat list instead.
func (h *Handler) ListAppointments(c *gin.Context) {
	if patientID := c.Query("patient_id"); patientID != "" {
		appointments, err := h.service.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, appointments)
		return
	}

	list, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, list)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	apt, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	apt, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) CompleteAppointment(c *gin.Context) {
	apt, err := h.service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}
