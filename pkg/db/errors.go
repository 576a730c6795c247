package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. When marker is provided, the helper looks for that
// text in the error message (a constraint or column name); otherwise it
// matches the generic Postgres and SQLite phrasings.
func IsUniqueViolation(err error, marker string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if marker != "" {
		return strings.Contains(msg, marker) &&
			(strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed"))
	}
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
