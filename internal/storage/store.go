package storage

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound is returned when a record is missing from storage.
var ErrNotFound = errors.New("storage: record not found")

// Store represents the root storage interface.
type Store interface {
	Close() error
	Sessions() SessionStore
}

// SessionStore manages the cardio session collection.
type SessionStore interface {
	// List returns every session sorted by the requested field and order.
	List(ctx context.Context, sort SortParams) ([]Session, error)
	// Get retrieves a session by ID, ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Session, error)
	// Create persists a new session, assigning an ID when none is set.
	Create(ctx context.Context, session *Session) error
	// Update overwrites an existing session, ErrNotFound when absent.
	Update(ctx context.Context, session Session) error
	// ReplaceAll atomically replaces the entire collection and returns
	// the number of inserted records. Used by the bulk importer.
	ReplaceAll(ctx context.Context, sessions []Session) (int, error)
}

// SortSessions orders sessions in place by the given parameters.
// Shared by backends that scan and sort in memory.
func SortSessions(sessions []Session, params SortParams) {
	less := lessFunc(params.Field)
	if params.Order == SortDesc {
		inner := less
		less = func(a, b *Session) bool { return inner(b, a) }
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return less(&sessions[i], &sessions[j])
	})
}

func lessFunc(field SortField) func(a, b *Session) bool {
	switch field {
	case SortByLength:
		return func(a, b *Session) bool { return a.Length < b.Length }
	case SortByDescription:
		return func(a, b *Session) bool { return a.Description < b.Description }
	case SortByIsFavorite:
		return func(a, b *Session) bool { return !a.IsFavorite && b.IsFavorite }
	default:
		return func(a, b *Session) bool { return a.FinishTime < b.FinishTime }
	}
}
