package config

import "math"

var Presets = map[string]map[string]*Config{
	"julia": {
		"reference": DefaultConfig(),
		"quick": {
			Strategy: "scalar",
			Julia: JuliaConfig{
				XLow: -DefaultBound, XHigh: DefaultBound,
				YLow: -DefaultBound, YHigh: DefaultBound,
				CReal: DefaultCReal, CImag: DefaultCImag,
				Width: 200, MaxIter: 80,
			},
		},
		"deep": {
			Strategy: "batch",
			Julia: JuliaConfig{
				XLow: -DefaultBound, XHigh: DefaultBound,
				YLow: -DefaultBound, YHigh: DefaultBound,
				CReal: DefaultCReal, CImag: DefaultCImag,
				Width: 1000, MaxIter: 1000,
			},
		},
	},
	"particles": {
		"reference": DefaultConfig(),
		"ring": {
			Strategy: "batch",
			Particle: ParticleConfig{
				Duration:  0.1,
				Particles: ringParticles(64, 0.8),
			},
		},
		"orbit": {
			Strategy: "scalar",
			Particle: ParticleConfig{
				Duration: 1.0,
				Particles: []ParticleInit{
					{X: 0.9, Y: 0, AngVel: 0.5},
					{X: 0, Y: 0.6, AngVel: -1.5},
				},
			},
		},
	},
}

func ringParticles(n int, radius float64) []ParticleInit {
	ps := make([]ParticleInit, n)
	for i := range ps {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ps[i] = ParticleInit{
			X:      radius * math.Cos(angle),
			Y:      radius * math.Sin(angle),
			AngVel: 1 + float64(i%5)*0.5,
		}
	}
	return ps
}

func GetPreset(kernel, name string) *Config {
	group, ok := Presets[kernel]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(kernel string) []string {
	group, ok := Presets[kernel]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
