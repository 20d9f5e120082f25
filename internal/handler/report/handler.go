package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmhcare/frontdesk-api/internal/handler"
	"github.com/mmhcare/frontdesk-api/internal/service/report"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/summary", h.GetSummary)
		reports.GET("/monthly", h.GetMonthly)
		reports.GET("/doctors", h.GetDoctors)
		reports.GET("/visit-types", h.GetVisitTypes)
	}
}

func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Summary(c.Request.Context())))
}

func (h *Handler) GetMonthly(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Monthly(c.Request.Context())))
}

func (h *Handler) GetDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Doctors(c.Request.Context())))
}

func (h *Handler) GetVisitTypes(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.VisitTypes(c.Request.Context())))
}
