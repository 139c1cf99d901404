package cardio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodtune/cardiotrack/internal/report"
	"github.com/goodtune/cardiotrack/internal/storage"
	"github.com/rs/zerolog"
)

// ErrInvalidSession is returned when a create payload fails validation.
var ErrInvalidSession = errors.New("cardio: invalid session")

// Report combines a session listing with its aggregates.
type Report struct {
	Sessions         []storage.Session
	MinutesThisWeek  int64
	MinutesThisMonth int64
	ExerciseTypes    []string
}

// Service orchestrates session persistence and report aggregation.
type Service struct {
	sessions storage.SessionStore
	clock    report.Clock
	location *time.Location
	logger   zerolog.Logger
}

// NewService creates a session service. The location fixes the civil
// calendar used for week and month boundaries.
func NewService(sessions storage.SessionStore, clock report.Clock, location *time.Location, logger zerolog.Logger) *Service {
	return &Service{
		sessions: sessions,
		clock:    clock,
		location: location,
		logger:   logger.With().Str("component", "cardio").Logger(),
	}
}

// List returns all sessions in the requested order together with the
// current week/month minute totals and the distinct manual exercise types.
func (s *Service) List(ctx context.Context, params storage.SortParams) (*Report, error) {
	sessions, err := s.sessions.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	windows := report.ComputeWindows(s.clock.Now(), s.location)
	summary := report.Aggregate(sessions, windows)

	s.logger.Debug().
		Int("sessions", len(sessions)).
		Int64("minutes_week", summary.MinutesThisWeek).
		Int64("minutes_month", summary.MinutesThisMonth).
		Msg("Report generated")

	return &Report{
		Sessions:         sessions,
		MinutesThisWeek:  summary.MinutesThisWeek,
		MinutesThisMonth: summary.MinutesThisMonth,
		ExerciseTypes:    summary.ExerciseTypes,
	}, nil
}

// Create validates and persists a new session, returning the stored
// record including its assigned ID.
func (s *Service) Create(ctx context.Context, session storage.Session) (*storage.Session, error) {
	if session.FinishTime <= 0 {
		return nil, fmt.Errorf("%w: finishTime is required", ErrInvalidSession)
	}
	if session.Length < 0 {
		return nil, fmt.Errorf("%w: length must be non-negative", ErrInvalidSession)
	}

	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info().
		Str("id", session.ID).
		Str("description", session.Description).
		Int64("length", session.Length).
		Msg("Session created")

	return &session, nil
}

// ToggleFavorite flips the favorite flag of the identified session and
// returns the updated record. storage.ErrNotFound propagates when the
// ID is unknown.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (*storage.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.IsFavorite = !session.IsFavorite
	if err := s.sessions.Update(ctx, *session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.logger.Info().
		Str("id", id).
		Bool("favorite", session.IsFavorite).
		Msg("Favorite toggled")

	return session, nil
}
