package labtest

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/internal/middleware"
	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/internal/service/labtest"
	"github.com/jwalitptl/medlink-api/internal/service/portal"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
)

type Handler struct {
	service *labtest.Service
	portal  *portal.Service
}

func NewHandler(service *labtest.Service, portal *portal.Service) *Handler {
	return &Handler{service: service, portal: portal}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/lab-tests", h.ListLabTests)
}

// RegisterSearchRoutes mounts the nearby lab search behind the AI rate limit.
func (h *Handler) RegisterSearchRoutes(r *gin.RouterGroup) {
	r.POST("/lab-tests/nearby", h.FindLabs)
}

func (h *Handler) ListLabTests(c *gin.Context) {
	tests, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, tests)
}

func (h *Handler) FindLabs(c *gin.Context) {
	var req model.LabSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	result, err := h.portal.FindLabs(c.Request.Context(), middleware.SessionID(c), req.TestName)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}
