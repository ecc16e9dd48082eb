package datasets

import "os"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

// Manifest records a split together with the parameters that produced it.
type Manifest struct {
	Root      string  `yaml:"root"`
	Extension string  `yaml:"extension"`
	TestSize  float64 `yaml:"test_size"`
	Seed      int64   `yaml:"seed"`
	Weighted  bool    `yaml:"weighted"`

	Split `yaml:",inline"`
}

// WriteFile saves the manifest as yaml.
func (m *Manifest) WriteFile(name string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return errors.Wrapf(err, "write manifest %s", name)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteFile.
func ReadManifest(name string) (*Manifest, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read manifest %s", name)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", name)
	}
	return &m, nil
}
