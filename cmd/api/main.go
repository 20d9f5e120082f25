package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mmhcare/frontdesk-api/internal/config"
	"github.com/mmhcare/frontdesk-api/internal/document"
	"github.com/mmhcare/frontdesk-api/internal/email"
	"github.com/mmhcare/frontdesk-api/internal/handler"
	appointmentHandler "github.com/mmhcare/frontdesk-api/internal/handler/appointment"
	billingHandler "github.com/mmhcare/frontdesk-api/internal/handler/billing"
	clinicHandler "github.com/mmhcare/frontdesk-api/internal/handler/clinic"
	patientHandler "github.com/mmhcare/frontdesk-api/internal/handler/patient"
	reportHandler "github.com/mmhcare/frontdesk-api/internal/handler/report"
	"github.com/mmhcare/frontdesk-api/internal/middleware"
	"github.com/mmhcare/frontdesk-api/internal/model"
	"github.com/mmhcare/frontdesk-api/internal/repository/memory"
	"github.com/mmhcare/frontdesk-api/internal/router"
	appointmentService "github.com/mmhcare/frontdesk-api/internal/service/appointment"
	billingService "github.com/mmhcare/frontdesk-api/internal/service/billing"
	patientService "github.com/mmhcare/frontdesk-api/internal/service/patient"
	reportService "github.com/mmhcare/frontdesk-api/internal/service/report"
	"github.com/mmhcare/frontdesk-api/pkg/idgen"
	"github.com/mmhcare/frontdesk-api/pkg/logger"
	"github.com/mmhcare/frontdesk-api/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Server.LogLevel)

	// Initialize repositories
	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()

	// Sequence allocator for application and receipt numbers
	ids := idgen.New()

	// Initialize services
	patientSvc := patientService.NewService(patientRepo, ids, cfg.Clinic.ApplicationPrefix)
	appointmentSvc := appointmentService.NewService(appointmentRepo, cfg.Doctors, cfg.TimeSlots)
	billingSvc := billingService.NewService(patientRepo, ids, cfg.Billing.SessionTTL, cfg.Billing.CleanupInterval)
	reportSvc := reportService.NewService(reportService.Fixtures{
		Summary:    cfg.Reports.Summary,
		Monthly:    cfg.Reports.Monthly,
		Doctors:    cfg.Reports.Doctors,
		VisitTypes: cfg.Reports.VisitTypes,
	})

	if err := seedFixtures(patientSvc, appointmentSvc, cfg.Fixtures); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo fixtures")
	}

	// Document rendering and outbound transports
	renderer := document.NewRenderer(cfg.Clinic)
	whatsapp := messaging.NewWhatsAppLinker(cfg.Clinic.CountryCode)
	emailSvc := email.NewService(cfg.Email)

	// Setup router
	r := router.NewRouter(
		handler.NewHandler(),
		router.Config{
			RateLimit:      middleware.RateLimiterConfig{RPS: cfg.RateLimit.RPS, Burst: cfg.RateLimit.Burst},
			CORS:           middleware.DefaultCORSConfig(),
			RequestTimeout: cfg.Server.RequestTimeout,
			MetricsPrefix:  "frontdesk",
		},
		patientHandler.NewHandler(patientSvc, renderer, whatsapp),
		appointmentHandler.NewHandler(appointmentSvc, cfg.TimeSlots),
		billingHandler.NewHandler(billingSvc, renderer, whatsapp, emailSvc),
		reportHandler.NewHandler(reportSvc),
		clinicHandler.NewHandler(cfg.Clinic, cfg.Fees, cfg.Hours, cfg.Doctors),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting front desk API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func seedFixtures(patients *patientService.Service, appointments *appointmentService.Service, fixtures config.DemoFixtures) error {
	ctx := context.Background()

	for _, f := range fixtures.Patients {
		_, err := patients.Register(ctx, &model.RegisterPatientRequest{
			VisitType:  f.VisitType,
			Name:       f.Name,
			Sex:        f.Sex,
			DOB:        f.DOB,
			BloodGroup: f.BloodGroup,
			Phone:      f.Phone,
			Aadhaar:    f.Aadhaar,
			UHID:       f.UHID,
			Address:    f.Address,
			Complaints: f.Complaints,
			Doctor:     f.Doctor,
		})
		if err != nil {
			return fmt.Errorf("failed to seed patient %s: %w", f.Name, err)
		}
	}

	seed := make([]*model.Appointment, 0, len(fixtures.Appointments))
	for _, f := range fixtures.Appointments {
		seed = append(seed, &model.Appointment{
			PatientName: f.PatientName,
			Phone:       f.Phone,
			Age:         f.Age,
			Doctor:      f.Doctor,
			TimeSlot:    f.TimeSlot,
			Type:        model.AppointmentType(f.Type),
			Status:      model.AppointmentStatus(f.Status),
		})
	}
	return appointments.Seed(ctx, seed)
}
