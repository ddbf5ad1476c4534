// Package config handles encoder configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all encoder settings.
type Config struct {
	Quantization QuantizationConfig `yaml:"quantization"`
	Output       OutputConfig       `yaml:"output"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// QuantizationConfig holds the maximum code per attribute group.
// AABBMax is independent of the vertex attribute ranges.
type QuantizationConfig struct {
	PositionMax uint16 `yaml:"position_max"`
	TexcoordMax uint16 `yaml:"texcoord_max"`
	NormalMax   uint16 `yaml:"normal_max"`
	AABBMax     uint16 `yaml:"aabb_max"`
}

// OutputConfig holds encoded payload settings.
type OutputConfig struct {
	MaxBytes int  `yaml:"max_bytes"` // 0 = unbounded
	Validate bool `yaml:"validate"`  // Re-check the payload is UTF-8
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Code limits. The emitter accepts words up to maxCode; attribute channels
// are zigzag delta coded, so twice their range must stay below it.
const (
	maxCode       = 0xF7FF
	maxAttribCode = 0x7BFF
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Quantization: QuantizationConfig{
			PositionMax: (1 << 14) - 1,
			TexcoordMax: (1 << 10) - 1,
			NormalMax:   (1 << 10) - 1,
			AABBMax:     (1 << 14) - 1,
		},
		Output: OutputConfig{
			MaxBytes: 0,
			Validate: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that every range is usable by the encoder.
func (c *Config) Validate() error {
	ranges := []struct {
		name  string
		v     uint16
		limit uint16
	}{
		{"position_max", c.Quantization.PositionMax, maxAttribCode},
		{"texcoord_max", c.Quantization.TexcoordMax, maxAttribCode},
		{"normal_max", c.Quantization.NormalMax, maxAttribCode},
		{"aabb_max", c.Quantization.AABBMax, maxCode},
	}
	var errs []error
	for _, r := range ranges {
		if r.v == 0 || r.v > r.limit {
			errs = append(errs, fmt.Errorf("quantization.%s: %d out of range 1..%d", r.name, r.v, r.limit))
		}
	}
	if c.Output.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("output.max_bytes: %d is negative", c.Output.MaxBytes))
	}
	return errors.Join(errs...)
}
