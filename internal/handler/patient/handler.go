package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mmhcare/frontdesk-api/internal/document"
	"github.com/mmhcare/frontdesk-api/internal/handler"
	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/service/patient"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
	"github.com/mmhcare/frontdesk-api/pkg/messaging"
)

type Handler struct {
	service  *patient.Service
	renderer *document.Renderer
	whatsapp *messaging.WhatsAppLinker
}

func NewHandler(service *patient.Service, renderer *document.Renderer, whatsapp *messaging.WhatsAppLinker) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		whatsapp: whatsapp,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.RegisterPatient)
		patients.GET("", h.ListPatients)
		patients.GET("/search", h.SearchPatients)
		patients.GET("/:id", h.GetPatient)
		patients.POST("/:id/visits", h.AddVisit)
	}
}

// registrationResponse carries the saved record plus the three document
// forms used by Save & Print and Save & WhatsApp.
type registrationResponse struct {
	Patient     *model.Patient `json:"patient"`
	Message     string         `json:"message"`
	PrintForm   string         `json:"print_form"`
	WhatsAppURL string         `json:"whatsapp_url"`
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(handler.BindError(err))
		return
	}

	p, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	message := h.renderer.RegistrationMessage(p)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(registrationResponse{
		Patient:     p,
		Message:     message,
		PrintForm:   h.renderer.RegistrationForm(p),
		WhatsAppURL: h.whatsapp.Link(p.Phone, message),
	}))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid patient ID", err))
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) SearchPatients(c *gin.Context) {
	var criteria model.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.Error(handler.BindError(err))
		return
	}

	patients, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) AddVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid patient ID", err))
		return
	}

	var req model.AddVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(handler.BindError(err))
		return
	}

	p, err := h.service.AddVisit(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}
