package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/trigviz/internal/trig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAngle      = 0
	DefaultStep       = 1
	DefaultBigStep    = 15
	DefaultTheme      = "classic"
	DefaultPlotWidth  = 45
	DefaultPlotHeight = 6
	DefaultScale      = 2
	DefaultSweepStep  = 5
)

var (
	ErrInvalidAngle = errors.New("config: angle must be within [0, 360]")
	ErrInvalidStep  = errors.New("config: step must be within [1, 360]")
	ErrInvalidPlot  = errors.New("config: plot size must be positive")
)

type Config struct {
	Angle     int          `yaml:"angle"`
	Step      int          `yaml:"step"`
	BigStep   int          `yaml:"big_step"`
	Theme     string       `yaml:"theme"`
	Functions []string     `yaml:"functions"`
	Plot      PlotConfig   `yaml:"plot"`
	Export    ExportConfig `yaml:"export"`
}

// PlotConfig sizes the terminal plots in character cells.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ExportConfig struct {
	Scale     int `yaml:"scale"`
	SweepStep int `yaml:"sweep_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Angle:     DefaultAngle,
		Step:      DefaultStep,
		BigStep:   DefaultBigStep,
		Theme:     DefaultTheme,
		Functions: functionNames(trig.Functions()),
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Export: ExportConfig{
			Scale:     DefaultScale,
			SweepStep: DefaultSweepStep,
		},
	}
}

// Load reads a YAML config. Fields missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Angle < trig.MinAngle || c.Angle > trig.MaxAngle {
		return fmt.Errorf("%w: got %d", ErrInvalidAngle, c.Angle)
	}
	for _, s := range []int{c.Step, c.BigStep, c.Export.SweepStep} {
		if s < 1 || s > trig.MaxAngle {
			return fmt.Errorf("%w: got %d", ErrInvalidStep, s)
		}
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 || c.Export.Scale <= 0 {
		return ErrInvalidPlot
	}
	_, err := c.GetFunctions()
	return err
}

// GetFunctions resolves the configured function names. An empty list means
// all six.
func (c *Config) GetFunctions() ([]trig.Function, error) {
	if len(c.Functions) == 0 {
		return trig.Functions(), nil
	}
	return trig.ParseFunctions(c.Functions)
}

func functionNames(fns []trig.Function) []string {
	out := make([]string, len(fns))
	for i, fn := range fns {
		out[i] = fn.String()
	}
	return out
}
