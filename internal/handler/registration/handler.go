package registration

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/registration"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *registration.Service
}

func NewHandler(service *registration.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	registrations := r.Group("/registrations")
	{
		registrations.POST("", h.Register)
		registrations.GET("", h.ListRegistrations)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.DoctorRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	reg, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, reg)
}

func (h *Handler) ListRegistrations(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, list)
}
