package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		start    Config
		expected Config
		wantErr  bool
	}{
		{
			name:  "all flags",
			args:  []string{"-a", "http://127.0.0.1:9090", "-t", "5", "-d", "/tmp/d.db", "-l", "debug"},
			start: Config{},
			expected: Config{
				ServerURL: "http://127.0.0.1:9090", RequestTimeout: 5 * time.Second,
				DatabasePath: "/tmp/d.db", LogLevel: "debug",
			},
		},
		{
			name:     "unset timeout keeps sub-second value",
			args:     []string{"-a", "http://x"},
			start:    Config{RequestTimeout: 1500 * time.Millisecond},
			expected: Config{ServerURL: "http://x", RequestTimeout: 1500 * time.Millisecond},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-l", "warn", "--verbose"},
			start:    Config{},
			expected: Config{LogLevel: "warn"},
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.start
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
