package initcond

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknown      = errors.New("initcond: unknown profile")
	ErrUnknownParam = errors.New("initcond: unknown parameter")
)

type Profile interface {
	Name() string
	Eval(grid []float64) []float64
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

var builders = map[string]func(length float64) Profile{
	"gaussian": func(l float64) Profile { return NewGaussian(l) },
	"spike":    func(l float64) Profile { return NewSpike() },
	"sine":     func(l float64) Profile { return NewSine(l) },
	"box":      func(l float64) Profile { return NewBox(l) },
	"uniform":  func(l float64) Profile { return NewUniform() },
}

// New builds the named profile with defaults scaled to a domain of the
// given length.
func New(name string, length float64) (Profile, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return fn(length), nil
}

// Names lists the registered profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply sets every parameter in params on p, stopping at the first error.
func Apply(p Profile, params map[string]float64) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := p.SetParam(k, params[k]); err != nil {
			return err
		}
	}
	return nil
}

func unknownParam(profile, name string) error {
	return fmt.Errorf("%w: %s has no %q", ErrUnknownParam, profile, name)
}
