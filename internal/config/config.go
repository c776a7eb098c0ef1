package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 100.0
	DefaultRes      = 100
	DefaultMaxIter  = 1000
	DefaultRMin     = 2.5
	DefaultRMax     = 4.0
	DefaultSteps    = 1000
	DefaultIters    = 1000
	DefaultKeep     = 100
	DefaultX0       = 1e-5
)

type Config struct {
	System     string           `yaml:"system"`
	Integrator string           `yaml:"integrator"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Seed       int64            `yaml:"seed"`
	InitState  InitStateConfig  `yaml:"init_state"`
	Mandelbrot MandelbrotConfig `yaml:"mandelbrot"`
	Logistic   LogisticConfig   `yaml:"logistic"`
}

type InitStateConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type MandelbrotConfig struct {
	Res     int     `yaml:"res"`
	MaxIter int     `yaml:"max_iter"`
	XMin    float64 `yaml:"x_min"`
	XMax    float64 `yaml:"x_max"`
	YMin    float64 `yaml:"y_min"`
	YMax    float64 `yaml:"y_max"`
}

type LogisticConfig struct {
	RMin  float64 `yaml:"r_min"`
	RMax  float64 `yaml:"r_max"`
	Steps int     `yaml:"steps"`
	Iters int     `yaml:"iters"`
	Keep  int     `yaml:"keep"`
	X0    float64 `yaml:"x0"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     "lorenz",
		Integrator: "euler",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState:  InitStateConfig{X: 1, Y: 1, Z: 1},
		Mandelbrot: MandelbrotConfig{
			Res:     DefaultRes,
			MaxIter: DefaultMaxIter,
			XMin:    -2, XMax: 2,
			YMin: -2, YMax: 2,
		},
		Logistic: LogisticConfig{
			RMin:  DefaultRMin,
			RMax:  DefaultRMax,
			Steps: DefaultSteps,
			Iters: DefaultIters,
			Keep:  DefaultKeep,
			X0:    DefaultX0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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
