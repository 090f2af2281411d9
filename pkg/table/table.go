package table

import (
	"fmt"
)

// Column is a named slice of values, one per row.
type Column struct {
	Name   string
	Values []Value
}

// Set rewrites the value at a row position.
func (c *Column) Set(i int, v Value) {
	c.Values[i] = v
}

// Table is the row store: ordered named columns of equal length. It is built
// once by the loader, rewritten in place by cleaners, and read by validators.
// Not safe for concurrent use; the pipeline owns it exclusively.
type Table struct {
	cols  []*Column
	index map[string]*Column
	rows  int
}

// New creates an empty table with the given row count.
func New(rows int) *Table {
	return &Table{
		index: make(map[string]*Column),
		rows:  rows,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the columns in insertion order.
func (t *Table) Columns() []*Column { return t.cols }

// Column returns the column with the given name, if present.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.index[name]
	return c, ok
}

// HasColumn reports whether a column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AddColumn appends a new column. The value count must match the table's row
// count, so no operation can change the number of rows.
func (t *Table) AddColumn(name string, values []Value) (*Column, error) {
	if len(values) != t.rows {
		return nil, fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), t.rows)
	}
	if _, exists := t.index[name]; exists {
		return nil, fmt.Errorf("column %q already exists", name)
	}
	c := &Column{Name: name, Values: values}
	t.cols = append(t.cols, c)
	t.index[name] = c
	return c, nil
}

// MustColumn returns a column or an error naming it; used by pipeline stages
// for which an absent column is a structural failure, not a data defect.
func (t *Table) MustColumn(name string) (*Column, error) {
	c, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("required column %q not found", name)
	}
	return c, nil
}
