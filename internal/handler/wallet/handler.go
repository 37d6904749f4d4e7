package wallet

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/wallet"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *wallet.Service
}

func NewHandler(service *wallet.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	w := r.Group("/wallet")
	{
		w.GET("", h.GetOverview)
		w.POST("/funds", h.AddFunds)
		w.GET("/plans", h.ListPlans)
		w.POST("/subscription", h.Subscribe)

		w.GET("/insurance", h.ListInsurance)
		w.POST("/insurance", h.AddInsurance)
		w.GET("/insurance/:id", h.GetInsurance)
		w.PUT("/insurance/:id", h.UpdateInsurance)
		w.DELETE("/insurance/:id", h.DeleteInsurance)
	}
}

// GetOverview returns balance, insurance and the plans of ?plan_type.
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), model.PlanType(c.Query("plan_type")))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, overview)
}

func (h *Handler) AddFunds(c *gin.Context) {
	var req model.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	w, err := h.service.AddFunds(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
}

func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.Plans(c.Request.Context(), model.PlanType(c.Query("type")))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, plans)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	w, err := h.service.Subscribe(c.Request.Context(), req.PlanID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
}

func (h *Handler) ListInsurance(c *gin.Context) {
	list, err := h.service.ListInsurance(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, list)
}

func (h *Handler) GetInsurance(c *gin.Context) {
	i, err := h.service.GetInsurance(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, i)
}

func (h *Handler) AddInsurance(c *gin.Context) {
	var req model.InsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	i, err := h.service.AddInsurance(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, i)
}

func (h *Handler) UpdateInsurance(c *gin.Context) {
	var req model.InsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	i, err := h.service.UpdateInsurance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, i)
}

func (h *Handler) DeleteInsurance(c *gin.Context) {
	if err := h.service.DeleteInsurance(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"id": c.Param("id")})
}
