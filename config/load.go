// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "FOURCOLOR_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides read through
// lookup (skipped when nil), then Validate.
func Load(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("Load %s: %w", path, err)
		}
	}
	if lookup != nil {
		if err := cfg.ApplyEnv(lookup); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Unknown keys are rejected; an
// empty document leaves cfg unchanged.
func (cfg *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("Decode: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("Decode: %w", err)
	}

	return nil
}

// ApplyEnv overlays FOURCOLOR_* variables. Palette is comma separated.
func (cfg *Config) ApplyEnv(lookup LookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, ErrEnv))
				return
			}
			*dst = b
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, ErrEnv))
				return
			}
			*dst = n
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, ErrEnv))
				return
			}
			*dst = d
		}
	}

	str("INPUT", &cfg.Input.Path)
	integer("MAX_VERTICES", &cfg.Input.MaxVertices)
	boolean("REQUIRE_SYMMETRIC", &cfg.Input.RequireSymmetric)
	boolean("REQUIRE_ZERO_DIAGONAL", &cfg.Input.RequireZeroDiagonal)
	if v, ok := lookup(EnvPrefix + "PALETTE"); ok && v != "" {
		labels := strings.Split(v, ",")
		for i := range labels {
			labels[i] = strings.TrimSpace(labels[i])
		}
		cfg.Palette = labels
	}
	str("STRATEGY", &cfg.Search.Strategy)
	duration("TIME_LIMIT", &cfg.Search.TimeLimit)
	boolean("CROSS_CHECK", &cfg.Search.CrossCheck)
	boolean("PLANARITY_GATE", &cfg.Planarity.Gate)
	str("DOT", &cfg.Output.DOT)
	str("SVG", &cfg.Output.SVG)
	str("METRICS_OUT", &cfg.Output.Metrics)
	str("LOG_LEVEL", &cfg.Log.Level)
	boolean("LOG_DEVELOPMENT", &cfg.Log.Development)
	str("ADDR", &cfg.Server.Addr)
	integer("SERVER_MAX_VERTICES", &cfg.Server.MaxVertices)
	duration("REQUEST_TIMEOUT", &cfg.Server.RequestTimeout)

	return errors.Join(errs...)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of cfg. Each failing field is named in
// the error, which wraps ErrInvalid.
func (cfg *Config) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalid)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("Validate: %s: %w", strings.Join(msgs, "; "), ErrInvalid)
}
