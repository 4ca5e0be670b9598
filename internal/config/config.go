package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev      string `yaml:"dev"`       // e.g. /dev/spidev0.0; empty picks the first port
	SpeedKHz int    `yaml:"speed_khz"` // e.g. 2500
}

type Ring struct {
	DurationMs int     `yaml:"duration_ms"` // base cadence; one indeterminate cycle
	SmallArc   float64 `yaml:"small_arc"`   // in-place sweep threshold (0.5 or the legacy 0.8)
}

type Dial struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type Layout struct {
	OffsetDeg float64 `yaml:"offset_deg"`
	Clockwise bool    `yaml:"clockwise"`
	Mirror    bool    `yaml:"mirror"`
}

type Power struct {
	BudgetMA float64 `yaml:"budget_ma"`
	ChanMA   float64 `yaml:"chan_ma"`
	Knee     float64 `yaml:"knee"`
}

type RGB struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

type Config struct {
	Driver     string  `yaml:"driver"` // "spi" | "fake"
	Pixels     int     `yaml:"pixels"`
	FPS        int     `yaml:"fps"`
	Brightness float64 `yaml:"brightness"`

	Fg RGB `yaml:"fg"`
	Bg RGB `yaml:"bg"`

	SPI    SPI    `yaml:"spi,omitempty"`
	Ring   Ring   `yaml:"ring"`
	Dial   Dial   `yaml:"dial"`
	Layout Layout `yaml:"layout"`
	Power  Power  `yaml:"power"`
}

// Default returns the configuration for a common 24-pixel ring with pixel 0
// at twelve o'clock.
func Default() *Config {
	return &Config{
		Driver:     "spi",
		Pixels:     24,
		FPS:        60,
		Brightness: 0.8,
		Fg:         RGB{R: 0.1, G: 0.4, B: 1.0},
		Bg:         RGB{},
		SPI:        SPI{SpeedKHz: 2500},
		Ring:       Ring{DurationMs: 1333, SmallArc: 0.5},
		Dial:       Dial{Min: 0, Max: 100},
		Layout:     Layout{OffsetDeg: -90, Clockwise: true},
		Power:      Power{BudgetMA: 500, ChanMA: 20, Knee: 0.9},
	}
}

// Load reads a config file over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
