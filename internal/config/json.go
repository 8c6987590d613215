package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Aljenshin/portfolio-console/internal/flagx"
	"github.com/Aljenshin/portfolio-console/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "24h"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN       string         `json:"database_dsn"`
	SessionValidity   timex.Duration `json:"session_validity"`
	LoginDelay        timex.Duration `json:"login_delay"`
	Demo              *bool          `json:"demo"`
	OperatorID        string         `json:"operator_id"`
	OperatorUsername  string         `json:"operator_username"`
	OperatorEmail     string         `json:"operator_email"`
	OperatorPassword  string         `json:"operator_password"`
	OperatorCreatedAt time.Time      `json:"operator_created_at"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given the function
// returns without touching cfg. Only keys present in the file override the
// defaults. Panics on read or unmarshal errors (caller should recover if
// desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionValidity.Duration != 0 {
		cfg.SessionValidity = jc.SessionValidity.Duration
	}
	if jc.LoginDelay.Duration != 0 {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.Demo != nil {
		cfg.Demo = *jc.Demo
	}
	if jc.OperatorID != "" {
		cfg.OperatorID = jc.OperatorID
	}
	if jc.OperatorUsername != "" {
		cfg.OperatorUsername = jc.OperatorUsername
	}
	if jc.OperatorEmail != "" {
		cfg.OperatorEmail = jc.OperatorEmail
	}
	if jc.OperatorPassword != "" {
		cfg.OperatorPassword = jc.OperatorPassword
	}
	if !jc.OperatorCreatedAt.IsZero() {
		cfg.OperatorCreatedAt = jc.OperatorCreatedAt
	}
}
