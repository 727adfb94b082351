package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-bnr/bnr/config"
	"github.com/go-bnr/bnr/transport"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Valid())
	assert.EqualValues(t, transport.DefaultVendorID, cfg.VendorID)
	assert.EqualValues(t, transport.DefaultProductID, cfg.ProductID)
	assert.Equal(t, transport.ChunkSize, cfg.ChunkSize)
	assert.Equal(t, transport.DefaultDeadline, cfg.RequestDeadline)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidDefaultsZeroFields(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Valid())
	assert.EqualValues(t, transport.DefaultVendorID, cfg.VendorID)
	assert.Equal(t, transport.ChunkSize, cfg.ChunkSize)
	assert.Equal(t, transport.DefaultDeadline, cfg.RequestDeadline)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidRejectsMismatchedChunkSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ChunkSize = 1234
	assert.Error(t, cfg.Valid())
}

func TestValidRejectsShortRequestDeadline(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RequestDeadline = time.Millisecond
	assert.Error(t, cfg.Valid())
}

func TestValidRejectsOutOfRangeEndpoint(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CallEndpoint = 0x100
	assert.Error(t, cfg.Valid())
}

func TestValidOnNilPointer(t *testing.T) {
	var cfg *config.Config
	assert.Error(t, cfg.Valid())
}

func TestTransportProjectsEndpointFields(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CallEndpoint = 2
	cfg.ResponseEndpoint = 0x81
	tc := cfg.Transport()
	assert.EqualValues(t, cfg.VendorID, tc.VendorID)
	assert.EqualValues(t, cfg.ProductID, tc.ProductID)
	assert.Equal(t, 2, tc.CallEndpoint)
	assert.Equal(t, 0x81, tc.ResponseEndpoint)
}

func TestLoadReadsYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "bnr.yaml")
	err := os.WriteFile(yamlPath, []byte("vendor_id: 3053\nproduct_id: 2560\nlog_level: warn\n"), 0o644)
	require.NoError(t, err)

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("BNR_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := config.Load(yamlPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadWithMissingFileDefaults(t *testing.T) {
	cfg, err := config.Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}
