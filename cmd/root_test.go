package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/oncare/care-report-api/pkg/config"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "root command without args shows help",
			args:           []string{},
			expectedOutput: "Care Report API",
		},
		{
			name:           "root command with --help",
			args:           []string{"--help"},
			expectedOutput: "Available Commands:",
		},
		{
			name:    "root command with invalid flag",
			args:    []string{"--invalid-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Contains(t, buf.String(), tt.expectedOutput)
		})
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range NewRootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "version", "sweep"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestApplyLogFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected config.LoggingConfig
	}{
		{
			name:     "no flags keep config",
			expected: config.LoggingConfig{Level: "info", Format: "console"},
		},
		{
			name:     "level override",
			args:     []string{"--log-level", "DEBUG"},
			expected: config.LoggingConfig{Level: "debug", Format: "console"},
		},
		{
			name:     "json override",
			args:     []string{"--json-logs"},
			expected: config.LoggingConfig{Level: "info", Format: "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			cmd.Flags().String("log-level", "", "")
			cmd.Flags().Bool("json-logs", false, "")
			assert.NoError(t, cmd.ParseFlags(tt.args))

			cfg := config.LoggingConfig{Level: "info", Format: "console"}
			applyLogFlags(cmd, &cfg)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
