package experiment

import (
	"fmt"
	"sort"

	"github.com/JulianaRamayo/simkern/internal/julia"
	"github.com/JulianaRamayo/simkern/internal/particle"
)

// Registry maps strategy names to kernel constructors. Callers select a
// strategy by name; result shapes are identical across strategies by
// contract.
type Registry struct {
	kernels  map[string]func() julia.Kernel
	evolvers map[string]func() particle.Evolver
}

func NewRegistry() *Registry {
	r := &Registry{
		kernels:  make(map[string]func() julia.Kernel),
		evolvers: make(map[string]func() particle.Evolver),
	}

	r.kernels["scalar"] = func() julia.Kernel { return julia.NewScalar() }
	r.kernels["batch"] = func() julia.Kernel { return julia.NewBatch() }

	r.evolvers["scalar"] = func() particle.Evolver { return particle.NewScalar() }
	r.evolvers["batch"] = func() particle.Evolver { return particle.NewBatch() }

	return r
}

func (r *Registry) GetKernel(name string) (julia.Kernel, error) {
	fn, ok := r.kernels[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetEvolver(name string) (particle.Evolver, error) {
	fn, ok := r.evolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListStrategies() []string {
	names := make([]string, 0, len(r.kernels))
	for name := range r.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
