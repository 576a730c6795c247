package projection

import (
	"strings"

	"github.com/google/uuid"
)

// Referent is anything a listing row can point at by id. Soft-deleted rows
// still satisfy the interface; IsLive distinguishes them.
type Referent interface {
	RefID() uuid.UUID
	DisplayName() string
	IsLive() bool
}

// Live filters to referents whose flag is unset, preserving input order.
// Dead referents drop out of projections entirely, ids included.
func Live[T Referent](rows []T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if row.IsLive() {
			out = append(out, row)
		}
	}
	return out
}

// IDs extracts the primary keys in row order.
func IDs[T Referent](rows []T) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.RefID())
	}
	return out
}

// JoinLiveNames renders the display names of live referents as a single
// comma-separated string, preserving input order. Dead referents degrade to
// nothing instead of leaking stale names into the panel.
func JoinLiveNames[T Referent](rows []T) string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.IsLive() {
			names = append(names, row.DisplayName())
		}
	}
	return strings.Join(names, ", ")
}

// LiveName returns the display name for a single optional referent, empty
// when the pointer is nil or the referent is dead.
func LiveName[T Referent](row *T) string {
	if row == nil {
		return ""
	}
	if !(*row).IsLive() {
		return ""
	}
	return (*row).DisplayName()
}
