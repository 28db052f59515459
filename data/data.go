// Package data contains the column oriented data source interfaces
// consumed by the layout engine, and prototypical in-memory
// implementations.
package data

import (
	"fmt"
	"time"
)

// Kind is the element type of a column.
type Kind int

const (
	Float Kind = iota
	String
	Time
)

// String returns the kind name.
func (k Kind) String() string {
	return []string{"float", "string", "time"}[int(k)]
}

// A Column is a typed sequence of values. Only the accessor matching
// Kind may be called; the others panic.
type Column interface {
	// Len returns the number of values.
	Len() int

	// Kind returns the element type.
	Kind() Kind

	Float(i int) float64
	Str(i int) string
	Time(i int) time.Time
}

// A Source provides named columns. Column fails for unknown names.
type Source interface {
	Column(name string) (Column, error)
}

// ----------------------------------------------------------------------------
// In-memory columns

// Floats implements a numeric Column.
type Floats []float64

func (c Floats) Len() int             { return len(c) }
func (c Floats) Kind() Kind           { return Float }
func (c Floats) Float(i int) float64  { return c[i] }
func (c Floats) Str(i int) string     { panic("Str on float column") }
func (c Floats) Time(i int) time.Time { panic("Time on float column") }

// Strings implements a categorical Column.
type Strings []string

func (c Strings) Len() int             { return len(c) }
func (c Strings) Kind() Kind           { return String }
func (c Strings) Float(i int) float64  { panic("Float on string column") }
func (c Strings) Str(i int) string     { return c[i] }
func (c Strings) Time(i int) time.Time { panic("Time on string column") }

// Times implements a time Column.
type Times []time.Time

func (c Times) Len() int             { return len(c) }
func (c Times) Kind() Kind           { return Time }
func (c Times) Float(i int) float64  { panic("Float on time column") }
func (c Times) Str(i int) string     { panic("Str on time column") }
func (c Times) Time(i int) time.Time { return c[i] }

// Table is a Source backed by a map of named columns.
type Table map[string]Column

func (t Table) Column(name string) (Column, error) {
	c, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("data: no column %q", name)
	}
	return c, nil
}
