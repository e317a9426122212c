package interpreter

import "fmt"

// Environment holds script variables

type Environment struct {
	vars map[string]float64
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]float64)}
}

func (e *Environment) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val float64) {
	e.vars[name] = val
}

func (e *Environment) String() string {
	return fmt.Sprint(e.vars)
}
