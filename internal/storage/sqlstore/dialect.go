package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect isolates what differs between the SQL backends.
type Dialect struct {
	Name string
	// Numbered placeholders ($1, $2, ...) instead of "?".
	NumberedParams bool
	// LockClause is appended to the row lock query inside a transaction.
	LockClause string
	// IsUniqueViolation recognises the driver's unique constraint error.
	IsUniqueViolation func(err error) bool
}

// Rebind rewrites "?" placeholders for the dialect.
func (d Dialect) Rebind(query string) string {
	if !d.NumberedParams {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}

	return b.String()
}
