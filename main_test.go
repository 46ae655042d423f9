package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		raw  string
		want *int64
	}{
		{"", nil},
		{"garbage", nil},
		{"-1", nil},
		{"0", ptr(0)},
		{"42", ptr(42)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parseSeed(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 3, cfg.SuccessAtCount)
	assert.Nil(t, cfg.Seed)
}

func TestLoadConfigRejectsBadThreshold(t *testing.T) {
	t.Setenv("SUCCESS_AT_COUNT", "0")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadConfigSeed(t *testing.T) {
	t.Setenv("SEED", "7")
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
}

func ptr(n int64) *int64 { return &n }
