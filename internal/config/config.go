package config

import (
	"os"

	"github.com/san-kum/mazelab/internal/maze"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 51
	DefaultHeight     = 51
	DefaultDifficulty = "hard"

	// Pixel renderers scale cells to fit the display budget, clamped
	// for legibility.
	DisplayBudget = 800
	MaxCellSize   = 20
	MinCellSize   = 2
)

// Config carries maze parameters, loadable from YAML. Seed 0 means
// "seed from the clock".
type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Difficulty string `yaml:"difficulty"`
	Seed       int64  `yaml:"seed"`
	CellSize   int    `yaml:"cell_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Difficulty: DefaultDifficulty,
	}
}

// Load reads a YAML config layered over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Overlay(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay reads a YAML config and applies only the fields it sets onto
// base, so base values survive a partial file. The zero value counts as
// unset for every field here: zero width, height, seed, and cell size
// are never meaningful configurations.
func Overlay(path string, base *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.Width != 0 {
		base.Width = file.Width
	}
	if file.Height != 0 {
		base.Height = file.Height
	}
	if file.Difficulty != "" {
		base.Difficulty = file.Difficulty
	}
	if file.Seed != 0 {
		base.Seed = file.Seed
	}
	if file.CellSize != 0 {
		base.CellSize = file.CellSize
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetDifficulty validates the configured label.
func (c *Config) GetDifficulty() (maze.Difficulty, error) {
	return maze.ParseDifficulty(c.Difficulty)
}

// FitCellSize computes the pixel size of one cell so the whole maze fits
// the display budget, clamped to [MinCellSize, MaxCellSize]. An explicit
// cell_size in the config wins.
func (c *Config) FitCellSize() int {
	if c.CellSize > 0 {
		return c.CellSize
	}
	return FitCellSize(c.Width, c.Height)
}

func FitCellSize(width, height int) int {
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= 0 {
		return MaxCellSize
	}
	size := DisplayBudget / longest
	if size > MaxCellSize {
		size = MaxCellSize
	}
	if size < MinCellSize {
		size = MinCellSize
	}
	return size
}
