package doctor

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/doctor"
	"github.com/jwalitptl/medlink-api/internal/service/portal"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *doctor.Service
	portal  *portal.Service
}

func NewHandler(service *doctor.Service, portal *portal.Service) *Handler {
	return &Handler{service: service, portal: portal}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
	}
}

// RegisterSearchRoutes mounts the AI-backed search, which the router
// places behind the rate limiter.
func (h *Handler) RegisterSearchRoutes(r *gin.RouterGroup) {
	r.POST("/doctors/nearby", h.FindNearby)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, d)
}

// FindNearby searches for specialists around the session's location.
func (h *Handler) FindNearby(c *gin.Context) {
	var req model.SpecialistSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	result, err := h.portal.FindSpecialists(c.Request.Context(), middleware.SessionID(c), req.Specialty)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}
