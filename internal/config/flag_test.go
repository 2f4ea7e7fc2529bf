package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d", "-a", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-l"})

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-f", "state.db", "-d", "postgres://localhost/drishya", "-a", "127.0.0.1:9090", "-s", "secret",
			"-t", "60", "-r", "0.5", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-l", "hi",
		}, expectPanic: false,
			expected: &Config{
				SQLitePath:      "state.db",
				DatabaseDSN:     "postgres://localhost/drishya",
				AdminAddr:       "127.0.0.1:9090",
				SecretKey:       "secret",
				SessionValidity: 60 * time.Minute,
				FailureRate:     0.5,
				S3AccessKey:     "user",
				S3SecretKey:     "password",
				S3Bucket:        "bucket",
				S3Region:        "us-west-1",
				S3BaseEndpoint:  "http://endpoint",
				DefaultLanguage: "hi",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
