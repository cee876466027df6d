package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Reference configuration constants. The julia values form the checksum
// oracle and the particle fixture the position oracle; treat them as fixed
// regression inputs rather than tunable defaults.
const (
	DefaultBound    = 1.8
	DefaultCReal    = -0.62772
	DefaultCImag    = -0.42193
	DefaultWidth    = 1000
	DefaultMaxIter  = 300
	DefaultDuration = 0.1
	DefaultStrategy = "scalar"
)

type Config struct {
	Strategy string         `yaml:"strategy"`
	Julia    JuliaConfig    `yaml:"julia"`
	Particle ParticleConfig `yaml:"particle"`
}

type JuliaConfig struct {
	XLow    float64 `yaml:"x_low"`
	XHigh   float64 `yaml:"x_high"`
	YLow    float64 `yaml:"y_low"`
	YHigh   float64 `yaml:"y_high"`
	CReal   float64 `yaml:"c_real"`
	CImag   float64 `yaml:"c_imag"`
	Width   int     `yaml:"width"`
	MaxIter int     `yaml:"max_iter"`
}

type ParticleConfig struct {
	Duration  float64        `yaml:"duration"`
	Particles []ParticleInit `yaml:"particles"`
}

type ParticleInit struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	AngVel float64 `yaml:"ang_vel"`
}

func DefaultConfig() *Config {
	return &Config{
		Strategy: DefaultStrategy,
		Julia: JuliaConfig{
			XLow:    -DefaultBound,
			XHigh:   DefaultBound,
			YLow:    -DefaultBound,
			YHigh:   DefaultBound,
			CReal:   DefaultCReal,
			CImag:   DefaultCImag,
			Width:   DefaultWidth,
			MaxIter: DefaultMaxIter,
		},
		Particle: ParticleConfig{
			Duration: DefaultDuration,
			Particles: []ParticleInit{
				{X: 0.3, Y: 0.5, AngVel: 1},
				{X: 0.0, Y: -0.5, AngVel: -1},
				{X: -0.1, Y: -0.4, AngVel: 3},
			},
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
