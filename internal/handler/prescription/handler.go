package prescription

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/portal"
	"github.com/jwalitptl/medlink-api/internal/service/prescription"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *prescription.Service
	portal  *portal.Service
}

func NewHandler(service *prescription.Service, portal *portal.Service) *Handler {
	return &Handler{service: service, portal: portal}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	prescriptions := r.Group("/prescriptions")
	{
		prescriptions.GET("", h.ListPrescriptions)
		prescriptions.GET("/:id", h.GetPrescription)
		prescriptions.POST("/:id/order", h.OrderPrescription)
		prescriptions.POST("/:id/refill", h.RequestRefill)
	}
}

// RegisterSearchRoutes mounts the pharmacy lookup, which calls the AI
// gateway and is rate limited by the router.
func (h *Handler) RegisterSearchRoutes(r *gin.RouterGroup) {
	r.POST("/prescriptions/:id/pharmacies", h.FindPharmacies)
}

func (h *Handler) ListPrescriptions(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, list)
}

func (h *Handler) GetPrescription(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}

func (h *Handler) FindPharmacies(c *gin.Context) {
	opts, err := h.portal.FindPharmacies(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, opts)
}

func (h *Handler) OrderPrescription(c *gin.Context) {
	var req model.OrderPrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	p, err := h.portal.OrderPrescription(c.Request.Context(), middleware.SessionID(c), c.Param("id"), req.Pharmacy)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}

func (h *Handler) RequestRefill(c *gin.Context) {
	p, err := h.service.RequestRefill(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}
