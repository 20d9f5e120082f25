// Package report serves the reporting dashboards. The figures are static
// fixtures injected through configuration; nothing is aggregated from the
// live registry.
package report

import (
	"context"

	"github.com/mmhcare/frontdesk-api/internal/model"
)

type Fixtures struct {
	Summary    model.ReportSummary
	Monthly    []model.MonthlyReport
	Doctors    []model.DoctorReport
	VisitTypes []model.VisitTypeReport
}

type Service struct {
	fixtures Fixtures
}

func NewService(fixtures Fixtures) *Service {
	return &Service{fixtures: fixtures}
}

func (s *Service) Summary(ctx context.Context) model.ReportSummary {
	return s.fixtures.Summary
}

func (s *Service) Monthly(ctx context.Context) []model.MonthlyReport {
	return s.fixtures.Monthly
}

func (s *Service) Doctors(ctx context.Context) []model.DoctorReport {
	return s.fixtures.Doctors
}

func (s *Service) VisitTypes(ctx context.Context) []model.VisitTypeReport {
	return s.fixtures.VisitTypes
}
