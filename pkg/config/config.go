// Package config loads the tool configuration from TOML files.
//
// Every knob has a default, so the zero configuration file is valid and
// a missing file falls back entirely to [Default]. Loaded values overlay
// the defaults field by field.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/geometry"
	"github.com/spacerabbit99982/abbund/pkg/statics"
)

// Config is the complete tool configuration.
type Config struct {
	Material Material `toml:"material"`
	Layout   Layout   `toml:"layout"`
	Cutting  Cutting  `toml:"cutting"`
	Search   Search   `toml:"search"`
}

// Material selects the timber grade and the roof dead load.
type Material struct {
	ElasticModulus float64 `toml:"elastic_modulus"` // Pa
	Density        float64 `toml:"density"`         // kg/m³
	DeadLoad       float64 `toml:"dead_load"`       // N/m²
}

// Layout sets the member spacings, in meters.
type Layout struct {
	StudSpacing   float64 `toml:"stud_spacing"`
	RafterSpacing float64 `toml:"rafter_spacing"`
	BattenSpacing float64 `toml:"batten_spacing"`
}

// Cutting configures the batten stock optimizer.
type Cutting struct {
	StockLength float64 `toml:"stock_length"` // m
	Kerf        float64 `toml:"kerf"`         // m
}

// Search bounds the dimension search.
type Search struct {
	MaxIterations  int       `toml:"max_iterations"`
	MaxSlenderness float64   `toml:"max_slenderness"` // height/width before widening
	Heights        []float64 `toml:"heights"`         // ascending standard heights, m
	Widths         []float64 `toml:"widths"`          // ascending standard widths, m
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Material: Material{
			ElasticModulus: statics.DefaultElasticModulus,
			Density:        statics.DefaultDensity,
			DeadLoad:       statics.DefaultDeadLoad,
		},
		Layout: Layout{
			StudSpacing:   geometry.DefaultStudSpacing,
			RafterSpacing: geometry.DefaultRafterSpacing,
			BattenSpacing: geometry.DefaultBattenSpacing,
		},
		Cutting: Cutting{
			StockLength: geometry.DefaultStockLength,
			Kerf:        0.003,
		},
		Search: Search{
			MaxIterations:  20,
			MaxSlenderness: 2.5,
			Heights:        []float64{0.08, 0.10, 0.12, 0.14, 0.16, 0.18, 0.20, 0.22, 0.24, 0.28, 0.32},
			Widths:         []float64{0.06, 0.08, 0.10, 0.12, 0.14, 0.16, 0.18, 0.20},
		},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged; a missing or malformed file is an INVALID_CONFIG
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s not readable", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the search or the kernel cannot work
// with.
func (c Config) Validate() error {
	if c.Material.ElasticModulus <= 0 || c.Material.Density <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "material constants must be positive")
	}
	if c.Cutting.StockLength <= 0 || c.Cutting.Kerf < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "stock length must be positive and kerf non-negative")
	}
	if c.Search.MaxIterations <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_iterations must be positive")
	}
	if len(c.Search.Heights) == 0 || len(c.Search.Widths) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "standard height and width lists must not be empty")
	}
	for i := 1; i < len(c.Search.Heights); i++ {
		if c.Search.Heights[i] <= c.Search.Heights[i-1] {
			return errors.New(errors.ErrCodeInvalidConfig, "standard heights must be strictly ascending")
		}
	}
	for i := 1; i < len(c.Search.Widths); i++ {
		if c.Search.Widths[i] <= c.Search.Widths[i-1] {
			return errors.New(errors.ErrCodeInvalidConfig, "standard widths must be strictly ascending")
		}
	}
	return nil
}

// Geometry maps the layout section onto kernel options.
func (c Config) Geometry() geometry.Options {
	return geometry.Options{
		StudSpacing:   c.Layout.StudSpacing,
		RafterSpacing: c.Layout.RafterSpacing,
		BattenSpacing: c.Layout.BattenSpacing,
		StockLength:   c.Cutting.StockLength,
	}
}

// Statics maps the material section onto engine options.
func (c Config) Statics() statics.Options {
	return statics.Options{
		ElasticModulus: c.Material.ElasticModulus,
		Density:        c.Material.Density,
		DeadLoad:       c.Material.DeadLoad,
	}
}
