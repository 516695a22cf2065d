// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig mirrors the eval flag set as a YAML document, so repeated
// runs can be driven from a file instead of a long command line.
// Complex parts are strings: they are parsed at the run precision, not
// at float64 precision.
type RunConfig struct {
	Precision uint `yaml:"precision"`

	Z struct {
		Re     string `yaml:"re"`
		Im     string `yaml:"im"`
		Random bool   `yaml:"random"`
	} `yaml:"z"`

	Word string `yaml:"word"`

	Rational struct {
		P uint64 `yaml:"p"`
		Q uint64 `yaml:"q"`
	} `yaml:"rational"`

	RandomWord int   `yaml:"random_word"`
	Seed       int64 `yaml:"seed"`
}

// LoadConfig reads and decodes a YAML run configuration. Unknown keys
// are rejected so typos surface instead of silently defaulting.
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg RunConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}
