package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/pkg/types"
)

// ErrInvalidConfig is returned when the file parses but fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	AMQP     AMQPConfig     `toml:"amqp"`
	Visio    VisioConfig    `toml:"visio"`
	Slots    []SlotConfig   `toml:"slots"`
	Pricing  PricingConfig  `toml:"pricing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN assembles the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	BcryptCost    int    `toml:"bcrypt_cost"`
}

type AMQPConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

type VisioConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// SlotConfig is one window of the daily slot catalog.
type SlotConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

type PricingConfig struct {
	BaseFee          float64 `toml:"base_fee"`
	EquipmentUnitFee float64 `toml:"equipment_unit_fee"`
	CleaningFee      float64 `toml:"cleaning_fee"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}

	for i, slot := range c.Slots {
		start, err := types.NewTimeStringFromString(slot.Start)
		if err != nil {
			return fmt.Errorf("%w: slots[%d].start: %v", ErrInvalidConfig, i, err)
		}
		end, err := types.NewTimeStringFromString(slot.End)
		if err != nil {
			return fmt.Errorf("%w: slots[%d].end: %v", ErrInvalidConfig, i, err)
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("%w: slots[%d] start must be before end", ErrInvalidConfig, i)
		}
	}
	return nil
}

// SlotCatalog converts the configured windows into domain slots,
// preserving their configured order.
func (c *Config) SlotCatalog() []domain.TimeSlot {
	catalog := make([]domain.TimeSlot, 0, len(c.Slots))
	for _, slot := range c.Slots {
		catalog = append(catalog, domain.TimeSlot{
			Start: types.TimeString(slot.Start),
			End:   types.TimeString(slot.End),
		})
	}
	return catalog
}

// DomainPricing converts the configured fee schedule.
func (c *Config) DomainPricing() domain.Pricing {
	return domain.Pricing{
		BaseFee:          c.Pricing.BaseFee,
		EquipmentUnitFee: c.Pricing.EquipmentUnitFee,
		CleaningFee:      c.Pricing.CleaningFee,
	}
}
