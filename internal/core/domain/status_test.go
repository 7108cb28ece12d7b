package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/conda-project/internal/core/domain"
)

func TestPrepareStatus_IsConsistent(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.PrepareStatus
		consistent bool
	}{
		{"Created", domain.PrepareStatusCreated, true},
		{"UpToDate", domain.PrepareStatusUpToDate, true},
		{"Inconsistent", domain.PrepareStatusInconsistent, false},
		{"Unknown", domain.PrepareStatus("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.consistent, tt.status.IsConsistent())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.LogLevel
	}{
		{"DEBUG", domain.LogLevelDebug},
		{"debug", domain.LogLevelDebug},
		{"INFO", domain.LogLevelInfo},
		{"WARNING", domain.LogLevelWarn},
		{"warn", domain.LogLevelWarn},
		{"ERROR", domain.LogLevelError},
		{"CRITICAL", domain.LogLevelError},
		{" info ", domain.LogLevelInfo},
		{"", domain.LogLevelWarn},
		{"verbose", domain.LogLevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARNING"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(99), "WARNING"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
