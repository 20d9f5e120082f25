package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/mmhcare/frontdesk-api/internal/model"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Clinic    ClinicConfig    `mapstructure:"clinic"`
	Fees      FeeSchedule     `mapstructure:"fees"`
	Hours     WorkingHours    `mapstructure:"hours"`
	Doctors   []model.Doctor  `mapstructure:"doctors"`
	TimeSlots []string        `mapstructure:"time_slots"`
	Billing   BillingConfig   `mapstructure:"billing"`
	Email     EmailConfig     `mapstructure:"email"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Reports   ReportFixtures  `mapstructure:"reports"`
	Fixtures  DemoFixtures    `mapstructure:"fixtures"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
}

// ClinicConfig is the clinic identity printed on forms and receipts.
type ClinicConfig struct {
	Name              string `mapstructure:"name" json:"name"`
	Address           string `mapstructure:"address" json:"address"`
	Phone             string `mapstructure:"phone" json:"phone"`
	Email             string `mapstructure:"email" json:"email"`
	CountryCode       string `mapstructure:"country_code" json:"country_code"`
	ApplicationPrefix string `mapstructure:"application_prefix" json:"application_prefix"`
}

type FeeSchedule struct {
	Consultation float64 `mapstructure:"consultation" json:"consultation"`
	Scan         float64 `mapstructure:"scan" json:"scan"`
	Admission    float64 `mapstructure:"admission" json:"admission"`
}

type WorkingHours struct {
	WorkingDays  []string `mapstructure:"working_days" json:"working_days"`
	MorningStart string   `mapstructure:"morning_start" json:"morning_start"`
	MorningEnd   string   `mapstructure:"morning_end" json:"morning_end"`
	EveningStart string   `mapstructure:"evening_start" json:"evening_start"`
	EveningEnd   string   `mapstructure:"evening_end" json:"evening_end"`
}

type BillingConfig struct {
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type ReportFixtures struct {
	Summary    model.ReportSummary     `mapstructure:"summary"`
	Monthly    []model.MonthlyReport   `mapstructure:"monthly"`
	Doctors    []model.DoctorReport    `mapstructure:"doctors"`
	VisitTypes []model.VisitTypeReport `mapstructure:"visit_types"`
}

// DemoFixtures seed the registry and appointment board at startup; both
// lists may be empty in production deployments.
type DemoFixtures struct {
	Patients     []PatientFixture     `mapstructure:"patients"`
	Appointments []AppointmentFixture `mapstructure:"appointments"`
}

type PatientFixture struct {
	VisitType  string `mapstructure:"visit_type"`
	Name       string `mapstructure:"name"`
	Sex        string `mapstructure:"sex"`
	DOB        string `mapstructure:"dob"`
	BloodGroup string `mapstructure:"blood_group"`
	Phone      string `mapstructure:"phone"`
	Aadhaar    string `mapstructure:"aadhaar"`
	UHID       string `mapstructure:"uhid"`
	Address    string `mapstructure:"address"`
	Complaints string `mapstructure:"complaints"`
	Doctor     string `mapstructure:"doctor"`
}

type AppointmentFixture struct {
	PatientName string `mapstructure:"patient_name"`
	Phone       string `mapstructure:"phone"`
	Age         int    `mapstructure:"age"`
	Doctor      string `mapstructure:"doctor"`
	TimeSlot    string `mapstructure:"time_slot"`
	Type        string `mapstructure:"type"`
	Status      string `mapstructure:"status"`
}

// envOverrides are process-environment settings that take precedence over
// the config file.
type envOverrides struct {
	Port     int    `envconfig:"PORT"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("frontdesk", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.LogLevel != "" {
		config.Server.LogLevel = env.LogLevel
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Clinic.ApplicationPrefix == "" {
		cfg.Clinic.ApplicationPrefix = "MMH"
	}
	if cfg.Clinic.CountryCode == "" {
		cfg.Clinic.CountryCode = "91"
	}
	if cfg.Billing.SessionTTL == 0 {
		cfg.Billing.SessionTTL = 2 * time.Hour
	}
	if cfg.Billing.CleanupInterval == 0 {
		cfg.Billing.CleanupInterval = 30 * time.Minute
	}
	if cfg.RateLimit.RPS == 0 {
		cfg.RateLimit.RPS = 50
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 100
	}
}
