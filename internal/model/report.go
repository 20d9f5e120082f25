package model

// Reporting views are static aggregates injected as fixtures; nothing here
// is computed from the registry.

type ReportSummary struct {
	TotalPatients    int     `json:"total_patients" mapstructure:"total_patients"`
	TotalRevenue     float64 `json:"total_revenue" mapstructure:"total_revenue"`
	AvgDailyPatients int     `json:"avg_daily_patients" mapstructure:"avg_daily_patients"`
	MonthPatients    int     `json:"month_patients" mapstructure:"month_patients"`
}

type MonthlyReport struct {
	Month    string  `json:"month" mapstructure:"month"`
	Patients int     `json:"patients" mapstructure:"patients"`
	Revenue  float64 `json:"revenue" mapstructure:"revenue"`
}

type DoctorReport struct {
	Name      string  `json:"name" mapstructure:"name"`
	Specialty string  `json:"specialty" mapstructure:"specialty"`
	Patients  int     `json:"patients" mapstructure:"patients"`
	Revenue   float64 `json:"revenue" mapstructure:"revenue"`
}

type VisitTypeReport struct {
	Type       string `json:"type" mapstructure:"type"`
	Count      int    `json:"count" mapstructure:"count"`
	Percentage int    `json:"percentage" mapstructure:"percentage"`
}
