package interpreter

import (
	"turtlecurve/internal/motif"
	"turtlecurve/internal/turtle"
)

// Context stores environment, the sequence under construction and the motif table

type Context struct {
	Env    *Environment
	Seq    *turtle.Sequence
	Motifs map[string]*turtle.Sequence
}

// NewContext returns a fresh context with an empty sequence and the
// builtin motifs pre-registered.
func NewContext() *Context {
	return &Context{
		Env:    NewEnvironment(),
		Seq:    turtle.NewSequence(),
		Motifs: motif.Builtins(),
	}
}
