package integrator

import (
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-ris-ltc/pkg/ltc"
)

var (
	ErrInvalidConfig     = errors.New("invalid integrator configuration")
	ErrMissingTables     = errors.New("ltc tables are required")
	ErrUnknownIntegrator = errors.New("unknown integrator")
)

// Config holds the estimator parameters. It is passed by value into the
// constructors; there is no process-wide state.
type Config struct {
	NumProposals   int  `yaml:"num_proposals"`    // Candidates streamed through the reservoir (M)
	NumPDFSamples  int  `yaml:"num_pdf_samples"`  // Direction samples per LTC-RIS target estimate (P)
	HideEmitters   bool `yaml:"hide_emitters"`    // Drop radiance of directly visible emitters
	VisibilityTest bool `yaml:"visibility_test"`  // Shadow test the RIS selection
	ReuseStreamPDF bool `yaml:"reuse_stream_pdf"` // Finalize with the streamed target instead of re-estimating

	EmitterSamples int `yaml:"emitter_samples"` // Emitter samples per point of the direct estimators
	BSDFSamples    int `yaml:"bsdf_samples"`    // BSDF samples per point of the direct estimators
}

// DefaultConfig returns the default estimator parameters
func DefaultConfig() Config {
	return Config{
		NumProposals:   32,
		NumPDFSamples:  4,
		VisibilityTest: true,
		ReuseStreamPDF: true,
		EmitterSamples: 1,
		BSDFSamples:    1,
	}
}

// Validate checks the sample counts
func (c Config) Validate() error {
	if c.NumProposals < 1 {
		return errors.Wrapf(ErrInvalidConfig, "num_proposals must be at least 1, got %d", c.NumProposals)
	}
	if c.NumPDFSamples < 1 {
		return errors.Wrapf(ErrInvalidConfig, "num_pdf_samples must be at least 1, got %d", c.NumPDFSamples)
	}
	if c.EmitterSamples < 0 || c.BSDFSamples < 0 {
		return errors.Wrapf(ErrInvalidConfig, "sample counts must not be negative, got emitter_samples=%d bsdf_samples=%d",
			c.EmitterSamples, c.BSDFSamples)
	}
	return nil
}

// LoadConfig reads a YAML file over the defaults and validates the result
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading integrator config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing integrator config %s", path)
	}
	return cfg, cfg.Validate()
}

type constructor func(cfg Config, tables ltc.Tables) (Integrator, error)

var constructors = map[string]constructor{
	"ris": func(cfg Config, _ ltc.Tables) (Integrator, error) {
		return NewRISIntegrator(cfg), nil
	},
	"ltc": func(cfg Config, tables ltc.Tables) (Integrator, error) {
		return NewLTCIntegrator(cfg, tables)
	},
	"ltc-ris": func(cfg Config, tables ltc.Tables) (Integrator, error) {
		return NewLTCRISIntegrator(cfg, tables)
	},
	"ltc-mc": func(cfg Config, tables ltc.Tables) (Integrator, error) {
		return NewLTCMCIntegrator(cfg, tables)
	},
	"direct": func(cfg Config, _ ltc.Tables) (Integrator, error) {
		return NewDirectIntegrator(cfg, cfg.EmitterSamples, cfg.BSDFSamples)
	},
	"emitter": func(cfg Config, _ ltc.Tables) (Integrator, error) {
		return NewDirectIntegrator(cfg, cfg.NumProposals, 0)
	},
	"bsdf": func(cfg Config, _ ltc.Tables) (Integrator, error) {
		return NewDirectIntegrator(cfg, 0, cfg.NumProposals)
	},
}

// Names returns the registered integrator names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the integrator registered under name
func New(name string, cfg Config, tables ltc.Tables) (Integrator, error) {
	create, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIntegrator, "%q (available: %v)", name, Names())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return create(cfg, tables)
}

func requireTables(tables ltc.Tables) error {
	if !tables.Complete() {
		return errors.WithStack(ErrMissingTables)
	}
	return nil
}
