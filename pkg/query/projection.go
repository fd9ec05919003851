// Package query provides SQL query building with projection mapping.
package query

import (
	"fmt"
	"strings"
)

type join struct {
	clause string
}

// ProjectionMap maps logical field names to qualified column references
// (alias.column) for a table and its optional joins.
type ProjectionMap struct {
	schema     string
	table      string
	alias      string
	columns    map[string]string
	columnList []string
	joins      []join
	current    string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
		current: alias,
	}
}

// Project adds a column mapping from database column to logical field name.
// Columns added after a Join call are qualified with the joined alias.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.current, column)
	p.columns[field] = qualified
	p.columnList = append(p.columnList, qualified)
	return p
}

// Join adds a join clause; subsequent Project calls use the joined alias.
func (p *ProjectionMap) Join(schema, table, alias, joinType, on string) *ProjectionMap {
	p.joins = append(p.joins, join{
		clause: fmt.Sprintf("%s %s.%s %s ON %s", joinType, schema, table, alias, on),
	})
	p.current = alias
	return p
}

// Column returns the qualified column for a logical field name, or the input
// unchanged when not mapped.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.columns[field]; ok {
		return col
	}
	return field
}

// Resolve returns the qualified column for a logical field name and whether
// the field is mapped.
func (p *ProjectionMap) Resolve(field string) (string, bool) {
	col, ok := p.columns[field]
	return col, ok
}

// Columns returns all mapped columns as a comma-separated string.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columnList, ", ")
}

// From returns the FROM clause source: qualified table, alias, and any joins.
func (p *ProjectionMap) From() string {
	source := fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
	for _, j := range p.joins {
		source += " " + j.clause
	}
	return source
}
