package session

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
	session := r.Group("/session")
	{
		session.GET("", h.GetSession)
		session.PUT("/view", h.SwitchView)
		session.PUT("/page", h.Navigate)
		session.PUT("/doctor/:id", h.SelectDoctor)
		session.PUT("/patient/:id", h.SelectPatient)
		session.DELETE("/patient", h.BackToPatients)
		session.GET("/patient/profile", h.PatientProfile)
		session.POST("/appointments", h.Book)

		session.POST("/location/request", h.RequestLocation)
		session.PUT("/location", h.SetLocation)
		session.POST("/location/denied", h.DenyLocation)
	}
}

func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) SwitchView(c *gin.Context) {
	var req model.SwitchViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	view, err := h.service.SwitchView(c.Request.Context(), middleware.SessionID(c), req.View)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) Navigate(c *gin.Context) {
	var req model.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	view, err := h.service.Navigate(c.Request.Context(), middleware.SessionID(c), req.Page)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) SelectDoctor(c *gin.Context) {
	view, err := h.service.SelectDoctor(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) SelectPatient(c *gin.Context) {
	view, err := h.service.SelectPatient(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) BackToPatients(c *gin.Context) {
	view, err := h.service.BackToPatients(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) PatientProfile(c *gin.Context) {
	profile, err := h.service.PatientProfile(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, profile)
}

// Book creates an appointment from the doctor profile screen.
func (h *Handler) Book(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	result, err := h.service.Book(c.Request.Context(), middleware.SessionID(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, result)
}

func (h *Handler) RequestLocation(c *gin.Context) {
	view, err := h.service.RequestLocation(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) SetLocation(c *gin.Context) {
	var req model.SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	loc := model.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	view, err := h.service.SetLocation(c.Request.Context(), middleware.SessionID(c), loc)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) DenyLocation(c *gin.Context) {
	view, err := h.service.DenyLocation(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}
