// Package config handles configuration for the Drishya binaries, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings shared by the CLI and the admin API.
//
// Fields:
//   - SQLitePath: local SQLite database file for the CLI state store.
//   - DatabaseDSN: optional PostgreSQL DSN (pgx); overrides SQLite when set.
//   - AdminAddr: bind address for the admin reporting API.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use test defaults in prod.
//   - SessionValidity: lifetime of a signed session token.
//   - AutosaveDelay / SavedIndicator: draft autosave debounce and "saved" badge duration.
//   - TransportLatency / FailureRate: simulated notification transport behavior.
//   - ProcessingDelay: simulated payment processing pause after submission.
//   - S3AccessKey / S3SecretKey / S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - DefaultLanguage: UI language used before a preference is persisted.
type Config struct {
	SQLitePath       string
	DatabaseDSN      string
	AdminAddr        string
	SecretKey        string
	SessionValidity  time.Duration
	AutosaveDelay    time.Duration
	SavedIndicator   time.Duration
	TransportLatency time.Duration
	FailureRate      float64
	ProcessingDelay  time.Duration
	S3AccessKey      string
	S3SecretKey      string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
	DefaultLanguage  string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.SQLitePath = "drishya.db"
	c.DatabaseDSN = ""
	c.AdminAddr = ":8081"
	c.SecretKey = "secretKey"
	c.SessionValidity = 24 * time.Hour
	c.AutosaveDelay = 5 * time.Second
	c.SavedIndicator = 2 * time.Second
	c.TransportLatency = 1500 * time.Millisecond
	c.FailureRate = 0.05
	c.ProcessingDelay = 2 * time.Second
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.DefaultLanguage = "en"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
