// SPDX-License-Identifier: MIT

// Package config loads the application configuration of the fourcolor CLI
// and service.
//
// Sources, lowest priority first:
//  1. Default() values in code
//  2. an optional YAML file
//  3. FOURCOLOR_* environment variables
//
// The result is checked with Validate before use.
package config

import (
	"errors"
	"time"
)

// DefaultInputFile is the matrix file offered by the interactive menu.
const DefaultInputFile = "matrix.txt"

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrEnv is returned for an unparsable environment override.
	ErrEnv = errors.New("config: bad environment value")
)

// Config is the full application configuration.
type Config struct {
	Input     Input     `yaml:"input"`
	Palette   []string  `yaml:"palette" validate:"min=1,unique,dive,required"`
	Search    Search    `yaml:"search"`
	Planarity Planarity `yaml:"planarity"`
	Output    Output    `yaml:"output"`
	Log       Log       `yaml:"log"`
	Server    Server    `yaml:"server"`
}

// Input controls how the adjacency matrix is obtained and checked.
type Input struct {
	// Path of the matrix file; empty means "ask".
	Path                string `yaml:"path"`
	Interactive         bool   `yaml:"interactive"`
	MaxVertices         int    `yaml:"max_vertices" validate:"min=1,max=4096"`
	RequireSymmetric    bool   `yaml:"require_symmetric"`
	RequireZeroDiagonal bool   `yaml:"require_zero_diagonal"`
}

// Search tunes the coloring search.
type Search struct {
	Strategy   string        `yaml:"strategy" validate:"oneof=recursive iterative"`
	TimeLimit  time.Duration `yaml:"time_limit" validate:"gte=0"`
	CrossCheck bool          `yaml:"cross_check"`
}

// Planarity toggles the non-planarity gate.
type Planarity struct {
	Gate bool `yaml:"gate"`
}

// Output names optional artifact files; empty disables each.
type Output struct {
	DOT     string `yaml:"dot"`
	SVG     string `yaml:"svg"`
	Metrics string `yaml:"metrics"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Server configures the HTTP service.
type Server struct {
	Addr           string        `yaml:"addr" validate:"required"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0"`
	MaxVertices    int           `yaml:"max_vertices" validate:"min=1,max=4096"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" validate:"min=1024"`
}

// Default returns a configuration that runs without any file or
// environment: four colors, recursive search, planarity gate on.
func Default() *Config {
	return &Config{
		Input: Input{
			MaxVertices:         1024,
			RequireSymmetric:    true,
			RequireZeroDiagonal: false,
		},
		Palette: []string{"red", "green", "blue", "yellow"},
		Search: Search{
			Strategy: "recursive",
		},
		Planarity: Planarity{Gate: true},
		Log: Log{
			Level: "info",
		},
		Server: Server{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   40 * time.Second,
			RequestTimeout: 30 * time.Second,
			MaxVertices:    128,
			MaxBodyBytes:   1 << 20,
		},
	}
}
