package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmhcare/frontdesk-api/internal/config"
	"github.com/mmhcare/frontdesk-api/internal/handler"
	"github.com/mmhcare/frontdesk-api/internal/model"
)

// Handler exposes the clinic's reference data: identity, fee schedule,
// working hours and the doctor roster. All of it is injected
// configuration, read-only at runtime.
type Handler struct {
	clinic  config.ClinicConfig
	fees    config.FeeSchedule
	hours   config.WorkingHours
	doctors []model.Doctor
}

func NewHandler(clinic config.ClinicConfig, fees config.FeeSchedule, hours config.WorkingHours, doctors []model.Doctor) *Handler {
	return &Handler{
		clinic:  clinic,
		fees:    fees,
		hours:   hours,
		doctors: doctors,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/settings", h.GetSettings)
	r.GET("/doctors", h.ListDoctors)
}

func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"clinic": h.clinic,
		"fees":   h.fees,
		"hours":  h.hours,
	}))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.doctors))
}
