// Package config handles configuration for the admin console, including
// defaults, an optional JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the portfolio admin console.
//
// Fields:
//   - DatabaseDSN: path of the SQLite file holding the durable session slot.
//   - SessionValidity: how long a stored session stays acceptable.
//   - LoginDelay: simulated round-trip delay applied to login attempts.
//     Zero disables the delay; correctness does not depend on it.
//   - Demo: seed the inbox with sample conversations on startup.
//   - OperatorID / OperatorUsername / OperatorEmail / OperatorPassword /
//     OperatorCreatedAt: the single operator credential record. Injected
//     here so the session gate never hardcodes it.
type Config struct {
	DatabaseDSN       string
	SessionValidity   time.Duration
	LoginDelay        time.Duration
	Demo              bool
	OperatorID        string
	OperatorUsername  string
	OperatorEmail     string
	OperatorPassword  string
	OperatorCreatedAt time.Time
}

// LoadDefaults populates Config with development defaults.
// NOTE: the default credential is for local demos only and should be
// overridden via JSON config in any shared environment.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "console.db"
	c.SessionValidity = 24 * time.Hour
	c.LoginDelay = 1 * time.Second
	c.Demo = false
	c.OperatorID = "1"
	c.OperatorUsername = "admin@example.com"
	c.OperatorEmail = "admin@example.com"
	c.OperatorPassword = "changeme"
	c.OperatorCreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
