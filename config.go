package schemadrift

import (
	"os"

	"gopkg.in/yaml.v3"

	sderrors "github.com/schemadrift/schemadrift/errors"
)

// FileConfig is the optional on-disk configuration (.schemadrift.yaml).
// Unset fields leave the corresponding default untouched.
type FileConfig struct {
	SampleRows      *int   `yaml:"sample_rows"`
	MaxUniqueValues *int   `yaml:"max_unique_values"`
	OutputFormat    string `yaml:"output_format"`
}

// LoadConfig reads a YAML config file. A missing file is not an error and
// yields the zero config.
func LoadConfig(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, sderrors.Wrap(sderrors.CodeReadError, "reading config "+path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return FileConfig{}, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid config "+path, err)
	}
	return cfg, nil
}

// Apply overlays the file config onto opts, returning the effective
// options.
func (c FileConfig) Apply(opts Options) Options {
	if c.SampleRows != nil && *c.SampleRows > 0 {
		opts.SampleRows = *c.SampleRows
	}
	if c.MaxUniqueValues != nil && *c.MaxUniqueValues > 0 {
		opts.MaxUniqueValues = *c.MaxUniqueValues
	}
	return opts
}
