package sqlite

import (
	"strings"

	"github.com/kailas-cloud/lexidex/internal/db"
)

// render builds the SELECT statement for q with positional parameters.
// Identifiers come from a validated query; values are always bound.
func render(q *db.SelectQuery) (string, []any) {
	where, whereArgs := renderWhere(q)

	var b strings.Builder
	args := make([]any, 0, 2*len(whereArgs)+2)

	b.WriteString("SELECT ")
	b.WriteString(db.ColumnOrderedID)
	for _, c := range q.Columns {
		b.WriteString(", ")
		b.WriteString(c)
	}
	if q.WithLength {
		b.WriteString(", length(" + db.ColumnDefinition + ") AS " + db.ColumnLength)
	}
	if q.CountAll {
		b.WriteString(", (SELECT COUNT(" + db.ColumnOrderedID + ") FROM ")
		b.WriteString(q.Table)
		b.WriteString(where)
		b.WriteString(") AS " + db.ColumnCountAll)
		args = append(args, whereArgs...)
	}

	b.WriteString(" FROM ")
	b.WriteString(q.Table)
	b.WriteString(where)
	args = append(args, whereArgs...)

	switch q.Order {
	case db.OrderRandom:
		b.WriteString(" ORDER BY random()")
	default:
		b.WriteString(" ORDER BY " + db.ColumnOrderedID)
	}

	switch {
	case q.Limit > 0:
		b.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	case q.Offset > 0:
		b.WriteString(" LIMIT -1")
	}
	if q.Offset > 0 {
		b.WriteString(" OFFSET ?")
		args = append(args, q.Offset)
	}
	return b.String(), args
}

func renderCount(q *db.SelectQuery) (string, []any) {
	where, args := renderWhere(q)
	return "SELECT COUNT(" + db.ColumnOrderedID + ") FROM " + q.Table + where, args
}

// renderWhere returns " WHERE ..." (or "") and its arguments.
func renderWhere(q *db.SelectQuery) (string, []any) {
	var (
		groups []string
		args   []any
	)

	if clauses := q.Match.Clauses(); len(clauses) > 0 {
		parts := make([]string, len(clauses))
		for i, c := range clauses {
			parts[i] = string(c.Column()) + " " + string(c.Operator()) + " ?"
			args = append(args, c.Value())
		}
		groups = append(groups, "("+strings.Join(parts, " OR ")+")")
	}

	if len(q.IDs) > 0 {
		marks := make([]string, len(q.IDs))
		for i, id := range q.IDs {
			marks[i] = "?"
			args = append(args, id)
		}
		groups = append(groups, db.ColumnOrderedID+" IN ("+strings.Join(marks, ", ")+")")
	}

	if q.Length != nil {
		groups = append(groups, "length("+db.ColumnDefinition+") >= ?")
		args = append(args, q.Length.Min)
		if q.Length.Max > 0 {
			groups = append(groups, "length("+db.ColumnDefinition+") <= ?")
			args = append(args, q.Length.Max)
		}
	}

	if len(groups) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(groups, " AND "), args
}
