package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DashboardKey is the config key of the Dashboard section
	DashboardKey = "dashboard"
	// ControllerKey is the config key of the Controller section
	ControllerKey = "controller"
)

// Dashboard is the configuration of the access to the CI backend.
type Dashboard struct {
	URI               string `mapstructure:"uri" env:"CIDASH_API_URI"`
	Username          string `mapstructure:"username" env:"CIDASH_USERNAME"`
	Password          string `mapstructure:"password" env:"CIDASH_PASSWORD"`
	AccessToken       string `mapstructure:"access_token" env:"CIDASH_ACCESS_TOKEN"`
	RefreshToken      string `mapstructure:"refresh_token" env:"CIDASH_REFRESH_TOKEN"`
	RefreshIntervalMs int    `mapstructure:"refresh_interval_ms" env:"CIDASH_REFRESH_INTERVAL_MS"`
}

// RefreshInterval returns the polling interval of pipeline views.
func (d Dashboard) RefreshInterval() time.Duration {
	return time.Duration(d.RefreshIntervalMs) * time.Millisecond
}

// Controller is the configuration of the HTTP controller.
type Controller struct {
	Listen string `mapstructure:"listen" env:"CIDASH_LISTEN"`
}

// LoadDashboard returns the Dashboard section with defaults, config file values and env variables applied in that order.
func LoadDashboard() (Dashboard, error) {
	d := Dashboard{
		URI:               "http://127.0.0.1:8000",
		RefreshIntervalMs: 1000,
	}
	if err := Unmarshal(DashboardKey, &d); err != nil {
		return Dashboard{}, errors.Wrap(err, "cannot load dashboard config")
	}
	if d.URI == "" {
		return Dashboard{}, errors.New("dashboard uri is required")
	}
	if d.RefreshIntervalMs <= 0 {
		return Dashboard{}, errors.Errorf("invalid refresh interval %dms", d.RefreshIntervalMs)
	}
	return d, nil
}

// LoadController returns the Controller section.
func LoadController() (Controller, error) {
	c := Controller{
		Listen: ":8080",
	}
	if err := Unmarshal(ControllerKey, &c); err != nil {
		return Controller{}, errors.Wrap(err, "cannot load controller config")
	}
	return c, nil
}
