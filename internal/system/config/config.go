// Released under an MIT license. See LICENSE.

// Package config reads osmium's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osmium-lang/osmium/internal/common/struct/table"
	"github.com/osmium-lang/osmium/internal/common/type/sym"
	"github.com/osmium-lang/osmium/internal/engine"
	"gopkg.in/yaml.v3"
)

// Name is the settings file looked for in the user's home directory.
const Name = ".osmium.yaml"

// T (config) holds settings. Zero values leave the engine's defaults alone.
type T struct {
	IterationLimit int      `yaml:"iteration_limit"`
	RecursionLimit int      `yaml:"recursion_limit"`
	Context        string   `yaml:"context"`
	ContextPath    []string `yaml:"context_path"`
	History        string   `yaml:"history"`
}

type config = T

// Decode reads settings from r. Unknown keys are an error.
func Decode(r io.Reader) (*config, error) {
	c := &config{}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Default returns the path of the settings file in the user's home directory.
func Default() string {
	return filepath.Join(os.Getenv("HOME"), Name)
}

// Load reads settings from the file at path. If path is empty the default
// file is read, if it exists.
func Load(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		path = Default()
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &config{}, nil
		}

		return nil, err
	}
	defer file.Close()

	c, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return c, nil
}

// Apply sets e's limits, context and context path from c.
func (c *config) Apply(e *engine.T) {
	if c.IterationLimit > 0 {
		e.IterationLimit = c.IterationLimit
	}

	if c.RecursionLimit > 0 {
		e.RecursionLimit = c.RecursionLimit
	}

	t := e.Table()

	if c.Context != "" {
		t.Context = c.Context
	}

	if c.ContextPath != nil {
		t.Path = c.ContextPath
	}
}

func (c *config) validate() error {
	if c.IterationLimit < 0 {
		return fmt.Errorf("iteration_limit must not be negative: %d", c.IterationLimit)
	}

	if c.RecursionLimit < 0 {
		return fmt.Errorf("recursion_limit must not be negative: %d", c.RecursionLimit)
	}

	if c.Context != "" && !context(c.Context) {
		return fmt.Errorf("%w: context %q", table.ErrInvalidName, c.Context)
	}

	for _, s := range c.ContextPath {
		if !context(s) {
			return fmt.Errorf("%w: context %q", table.ErrInvalidName, s)
		}
	}

	return nil
}

func context(s string) bool {
	return strings.HasSuffix(s, sym.Separator) && table.Valid(strings.TrimSuffix(s, sym.Separator))
}
