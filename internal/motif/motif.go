// Package motif provides the builtin substitution motifs and loads
// user-defined motifs from TOML preset files. Every motif is a move
// sequence whose net displacement points along +Y with final heading
// 90, so it can stand in for a straight segment.
package motif

import (
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"turtlecurve/internal/turtle"
)

// Koch returns the Koch curve motif: a unit segment with a triangular
// bump on its middle third.
func Koch() *turtle.Sequence {
	m := turtle.NewSequence()
	m.Forward(1)
	m.TurnLeft(60)
	m.Forward(1)
	m.TurnRight(120)
	m.Forward(1)
	m.TurnLeft(60)
	m.Forward(1)
	unit(m)
	return m
}

// Levy returns the Lévy C curve motif: two segments meeting at a right
// angle.
func Levy() *turtle.Sequence {
	m := turtle.NewSequence()
	m.TurnLeft(45)
	m.Forward(1)
	m.TurnRight(90)
	m.Forward(1)
	m.TurnLeft(45)
	unit(m)
	return m
}

// Minkowski returns the Minkowski sausage motif: a unit segment bent
// into a square-wave bump.
func Minkowski() *turtle.Sequence {
	m := turtle.NewSequence()
	m.Forward(1)
	m.TurnLeft(90)
	m.Forward(1)
	m.TurnRight(90)
	m.Forward(1)
	m.TurnRight(90)
	m.Forward(1)
	m.Forward(1)
	m.TurnLeft(90)
	m.Forward(1)
	m.TurnLeft(90)
	m.Forward(1)
	m.TurnRight(90)
	m.Forward(1)
	unit(m)
	return m
}

// unit rescales a freshly built motif to unit displacement. The motifs
// above all have non-zero displacement, so the error cannot happen.
func unit(m *turtle.Sequence) {
	if err := m.NormalizeLength(1); err != nil {
		panic(err)
	}
}

// Builtins returns fresh copies of all builtin motifs keyed by name.
func Builtins() map[string]*turtle.Sequence {
	return map[string]*turtle.Sequence{
		"koch":      Koch(),
		"levy":      Levy(),
		"minkowski": Minkowski(),
	}
}

// Names returns the builtin motif names in sorted order.
func Names() []string {
	b := Builtins()
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition is one motif entry in a preset file. The script is a
// turtle script compiled by the caller.
type Definition struct {
	Name   string `toml:"name"`
	Script string `toml:"script"`
}

// File is the top-level layout of a TOML preset file:
//
//	[[motif]]
//	name = "zigzag"
//	script = "left 45; forward 1; right 90; forward 1; left 45;"
type File struct {
	Motifs []Definition `toml:"motif"`
}

// LoadFile reads motif definitions from a TOML preset file.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading motif file: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	seen := make(map[string]bool)
	for _, d := range f.Motifs {
		if d.Name == "" {
			return nil, fmt.Errorf("%s: motif with empty name", path)
		}
		if d.Script == "" {
			return nil, fmt.Errorf("%s: motif %s has no script", path, d.Name)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("%s: duplicate motif %s", path, d.Name)
		}
		seen[d.Name] = true
	}
	return f.Motifs, nil
}
