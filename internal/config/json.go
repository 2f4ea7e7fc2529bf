package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/drishya/internal/flagx"
	"github.com/dmitrijs2005/drishya/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "5s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	SQLitePath       string         `json:"sqlite_path"`
	DatabaseDSN      string         `json:"database_dsn"`
	AdminAddr        string         `json:"admin_addr"`
	SecretKey        string         `json:"secret_key"`
	SessionValidity  timex.Duration `json:"session_validity"`
	AutosaveDelay    timex.Duration `json:"autosave_delay"`
	SavedIndicator   timex.Duration `json:"saved_indicator"`
	TransportLatency timex.Duration `json:"transport_latency"`
	FailureRate      float64        `json:"failure_rate"`
	ProcessingDelay  timex.Duration `json:"processing_delay"`
	S3AccessKey      string         `json:"s3_access_key"`
	S3SecretKey      string         `json:"s3_secret_key"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	DefaultLanguage  string         `json:"default_language"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.SQLitePath = c.SQLitePath
	config.DatabaseDSN = c.DatabaseDSN
	config.AdminAddr = c.AdminAddr
	config.SecretKey = c.SecretKey
	config.SessionValidity = time.Duration(c.SessionValidity.Duration)
	config.AutosaveDelay = time.Duration(c.AutosaveDelay.Duration)
	config.SavedIndicator = time.Duration(c.SavedIndicator.Duration)
	config.TransportLatency = time.Duration(c.TransportLatency.Duration)
	config.FailureRate = c.FailureRate
	config.ProcessingDelay = time.Duration(c.ProcessingDelay.Duration)
	config.S3AccessKey = c.S3AccessKey
	config.S3SecretKey = c.S3SecretKey
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.DefaultLanguage = c.DefaultLanguage
}
