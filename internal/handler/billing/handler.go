package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mmhcare/frontdesk-api/internal/document"
	"github.com/mmhcare/frontdesk-api/internal/email"
	"github.com/mmhcare/frontdesk-api/internal/handler"
	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/service/billing"
	apperrors "github.com/mmhcare/frontdesk-api/pkg/errors"
	"github.com/mmhcare/frontdesk-api/pkg/messaging"
)

type Handler struct {
	service  *billing.Service
	renderer *document.Renderer
	whatsapp *messaging.WhatsAppLinker
	email    email.Service
}

func NewHandler(service *billing.Service, renderer *document.Renderer, whatsapp *messaging.WhatsAppLinker, emailSvc email.Service) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		whatsapp: whatsapp,
		email:    emailSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sessions := r.Group("/billing/sessions")
	{
		sessions.POST("", h.OpenSession)
		sessions.GET("/:id", h.GetSession)
		sessions.GET("/:id/total", h.GetTotal)
		sessions.POST("/:id/charges", h.AddCharge)
		sessions.DELETE("/:id/charges/:chargeId", h.RemoveCharge)
		sessions.POST("/:id/receipt", h.GenerateReceipt)
	}
}

// receiptResponse carries the finalized receipt plus the document forms
// used for printing and messaging.
type receiptResponse struct {
	Receipt     *model.Receipt `json:"receipt"`
	Document    string         `json:"document"`
	Message     string         `json:"message"`
	WhatsAppURL string         `json:"whatsapp_url"`
}

func (h *Handler) OpenSession(c *gin.Context) {
	var req model.OpenBillingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(handler.BindError(err))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.Error(apperrors.BadRequest("invalid patient ID", err))
		return
	}

	session, err := h.service.Open(c.Request.Context(), patientID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(session))
}

func (h *Handler) GetSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid session ID", err))
		return
	}

	session, err := h.service.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) GetTotal(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid session ID", err))
		return
	}

	total, err := h.service.Total(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"total": total}))
}

func (h *Handler) AddCharge(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid session ID", err))
		return
	}

	var req model.AddChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(handler.BindError(err))
		return
	}

	session, err := h.service.AddCharge(c.Request.Context(), sessionID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(session))
}

func (h *Handler) RemoveCharge(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid session ID", err))
		return
	}

	chargeID, err := uuid.Parse(c.Param("chargeId"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid charge ID", err))
		return
	}

	session, err := h.service.RemoveCharge(c.Request.Context(), sessionID, chargeID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) GenerateReceipt(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid session ID", err))
		return
	}

	var req model.FinalizeBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(handler.BindError(err))
		return
	}

	receipt, err := h.service.Finalize(c.Request.Context(), sessionID, req.PaymentMode)
	if err != nil {
		c.Error(err)
		return
	}

	message := h.renderer.ReceiptMessage(receipt)

	if req.EmailTo != "" {
		if err := h.email.SendReceipt(c.Request.Context(), req.EmailTo, receipt.Number, message); err != nil {
			log.Warn().Err(err).Str("receipt", receipt.Number).Msg("failed to email receipt")
		}
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(receiptResponse{
		Receipt:     receipt,
		Document:    h.renderer.ReceiptDocument(receipt),
		Message:     message,
		WhatsAppURL: h.whatsapp.Link(receipt.Phone, message),
	}))
}
