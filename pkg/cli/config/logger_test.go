package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/t-okuda/relwatch/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Logger
	}{
		{"default level", config.Logger{}},
		{"debug console", config.Logger{Level: "debug"}},
		{"info json", config.Logger{Level: "info", JSON: true}},
		{"warn console", config.Logger{Level: "warn"}},
		{"error json", config.Logger{Level: "error", JSON: true}},
		{"unknown level falls back to info", config.Logger{Level: "nonsense"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := gt.R1(tt.cfg.Configure()).NoError(t)
			gt.Value(t, logger).NotNil()
		})
	}
}

func TestLoggerFlags(t *testing.T) {
	var cfg config.Logger
	flags := cfg.Flags()
	gt.Number(t, len(flags)).Equal(2)
}
