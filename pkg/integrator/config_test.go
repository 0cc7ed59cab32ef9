package integrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-ris-ltc/pkg/ltc"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.NumProposals)
	assert.Equal(t, 4, cfg.NumPDFSamples)
	assert.True(t, cfg.VisibilityTest)
	assert.True(t, cfg.ReuseStreamPDF)
	assert.False(t, cfg.HideEmitters)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no proposals", func(c *Config) { c.NumProposals = 0 }},
		{"no pdf samples", func(c *Config) { c.NumPDFSamples = 0 }},
		{"negative emitter samples", func(c *Config) { c.EmitterSamples = -1 }},
		{"negative bsdf samples", func(c *Config) { c.BSDFSamples = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_proposals: 8\nvisibility_test: false\nhide_emitters: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.NumProposals)
	assert.False(t, cfg.VisibilityTest)
	assert.True(t, cfg.HideEmitters)
	assert.Equal(t, 4, cfg.NumPDFSamples, "unset keys keep their defaults")

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "missing.yaml")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("num_proposals: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "parsing integrator config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("num_pdf_samples: 0\n"), 0o644))
	_, err = LoadConfig(invalid)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNew(t *testing.T) {
	assert.Equal(t, []string{"bsdf", "direct", "emitter", "ltc", "ltc-mc", "ltc-ris", "ris"}, Names())

	tables := ltc.NewIdentityTables(4)
	for _, name := range Names() {
		integ, err := New(name, DefaultConfig(), tables)
		require.NoError(t, err, name)
		assert.NotNil(t, integ, name)
	}

	_, err := New("restir", DefaultConfig(), tables)
	assert.True(t, errors.Is(err, ErrUnknownIntegrator))
	assert.ErrorContains(t, err, "ltc-ris")

	for _, name := range []string{"ltc", "ltc-ris", "ltc-mc"} {
		_, err := New(name, DefaultConfig(), ltc.Tables{})
		assert.True(t, errors.Is(err, ErrMissingTables), name)
	}

	cfg := DefaultConfig()
	cfg.NumProposals = -1
	_, err = New("ris", cfg, tables)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewDirectIntegrator_NeedsSamples(t *testing.T) {
	_, err := NewDirectIntegrator(DefaultConfig(), 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	cfg := DefaultConfig()
	cfg.BSDFSamples = 0
	_, err = New("direct", cfg, ltc.Tables{})
	assert.NoError(t, err)
}
