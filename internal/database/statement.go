// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// identPattern restricts column names to lowercase snake case.
var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func ident(name string) string {
	if !identPattern.MatchString(name) {
		panic(fmt.Sprintf("database: invalid identifier %q", name))
	}
	return pgx.Identifier{name}.Sanitize()
}

// Assignment pairs a column with the parameter it receives. The parameter
// name doubles as the placeholder name.
type Assignment struct {
	Column string
	Param  Param
}

// Set builds an assignment whose placeholder is named after the column.
func Set(column string, p Param) Assignment {
	p.Name = column
	return Assignment{Column: column, Param: p}
}

// UpdateSet is the SET list of a partial update, assembled from whichever
// fields a request supplied.
type UpdateSet []Assignment

// Add appends an assignment.
func (u *UpdateSet) Add(a Assignment) {
	*u = append(*u, a)
}

// Empty reports whether nothing is to be updated.
func (u UpdateSet) Empty() bool {
	return len(u) == 0
}

// Clause renders `"col" = @col, ...` and the parameters it references.
func (u UpdateSet) Clause() (string, Params) {
	parts := make([]string, 0, len(u))
	params := make(Params, 0, len(u))
	for _, a := range u {
		parts = append(parts, ident(a.Column)+" = @"+a.Param.Name)
		params = append(params, a.Param)
	}
	return strings.Join(parts, ", "), params
}

// Upsert is an insert-or-update keyed by a unique constraint. Columns in
// Update take the incoming value on conflict; all others keep theirs.
type Upsert struct {
	Table    string
	Conflict []string
	Insert   []Assignment
	Update   []string
}

// Statement renders one INSERT ... ON CONFLICT ... DO UPDATE statement.
func (u Upsert) Statement() (string, Params) {
	cols := make([]string, 0, len(u.Insert))
	placeholders := make([]string, 0, len(u.Insert))
	params := make(Params, 0, len(u.Insert))
	for _, a := range u.Insert {
		cols = append(cols, ident(a.Column))
		placeholders = append(placeholders, "@"+a.Param.Name)
		params = append(params, a.Param)
	}

	conflict := make([]string, 0, len(u.Conflict))
	for _, c := range u.Conflict {
		conflict = append(conflict, ident(c))
	}

	updates := make([]string, 0, len(u.Update))
	for _, c := range u.Update {
		updates = append(updates, ident(c)+" = EXCLUDED."+ident(c))
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(ident(u.Table))
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(placeholders, ", "))
	b.WriteString(") ON CONFLICT (")
	b.WriteString(strings.Join(conflict, ", "))
	if len(updates) == 0 {
		b.WriteString(") DO NOTHING")
	} else {
		b.WriteString(") DO UPDATE SET ")
		b.WriteString(strings.Join(updates, ", "))
	}
	return b.String(), params
}
