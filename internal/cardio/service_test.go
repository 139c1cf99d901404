package cardio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/goodtune/cardiotrack/internal/report"
	"github.com/goodtune/cardiotrack/internal/storage"
	"github.com/goodtune/cardiotrack/internal/storage/bolt"
	"github.com/rs/zerolog"
)

func newTestService(t *testing.T, now time.Time, loc *time.Location) *Service {
	t.Helper()

	store, err := bolt.Open(filepath.Join(t.TempDir(), "cardiotrack.bolt"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clock := &report.TestClock{CurrentTime: now}
	return NewService(store.Sessions(), clock, loc, zerolog.Nop())
}

func TestServiceListAggregates(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	// Wednesday 2024-03-13 15:00 local
	now := time.Date(2024, time.March, 13, 15, 0, 0, 0, loc)
	svc := newTestService(t, now, loc)

	weekStart := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, loc)

	fixtures := []storage.Session{
		{Description: "rowing", FinishTime: weekStart.UnixMilli() + 3_600_000, Length: 1200},
		{Description: "cycling", FinishTime: monthStart.UnixMilli() + 3_600_000, Length: 600},
		{Description: "elliptical", FinishTime: monthStart.UnixMilli() - 3_600_000, Length: 6000},
		{Description: "HIIT", YouTubeURL: "https://youtube.com/watch?v=x", FinishTime: weekStart.UnixMilli() + 60_000, Length: 900},
	}
	for _, session := range fixtures {
		if _, err := svc.Create(context.Background(), session); err != nil {
			t.Fatalf("create fixture: %v", err)
		}
	}

	got, err := svc.List(context.Background(), storage.DefaultSort())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(got.Sessions) != 4 {
		t.Errorf("expected 4 sessions, got %d", len(got.Sessions))
	}
	if got.MinutesThisWeek != 35 { // 1200s + 900s
		t.Errorf("MinutesThisWeek = %d, want 35", got.MinutesThisWeek)
	}
	if got.MinutesThisMonth != 45 { // 1200s + 600s + 900s
		t.Errorf("MinutesThisMonth = %d, want 45", got.MinutesThisMonth)
	}
	if len(got.ExerciseTypes) != 3 {
		t.Errorf("ExerciseTypes = %v, want 3 manual types", got.ExerciseTypes)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	loc := time.UTC
	svc := newTestService(t, time.Date(2024, time.March, 13, 15, 0, 0, 0, loc), loc)

	tests := []struct {
		name    string
		session storage.Session
		wantErr bool
	}{
		{"valid", storage.Session{Description: "rowing", FinishTime: 1700000000000, Length: 600}, false},
		{"zero length allowed", storage.Session{Description: "rowing", FinishTime: 1700000000000, Length: 0}, false},
		{"missing finish time", storage.Session{Description: "rowing", Length: 600}, true},
		{"negative length", storage.Session{Description: "rowing", FinishTime: 1700000000000, Length: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Create(context.Background(), tt.session)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSession) {
					t.Fatalf("expected ErrInvalidSession, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if created.ID == "" {
				t.Error("expected assigned ID")
			}
		})
	}
}

func TestServiceToggleFavorite(t *testing.T) {
	loc := time.UTC
	svc := newTestService(t, time.Date(2024, time.March, 13, 15, 0, 0, 0, loc), loc)

	created, err := svc.Create(context.Background(), storage.Session{
		Description: "rowing",
		FinishTime:  1700000000000,
		Length:      600,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.ToggleFavorite(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle favorite: %v", err)
	}
	if !toggled.IsFavorite {
		t.Error("expected favorite after first toggle")
	}

	// Toggling twice returns the record to its original state.
	toggled, err = svc.ToggleFavorite(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if toggled.IsFavorite {
		t.Error("expected favorite cleared after second toggle")
	}
}

func TestServiceToggleFavoriteMissing(t *testing.T) {
	loc := time.UTC
	svc := newTestService(t, time.Date(2024, time.March, 13, 15, 0, 0, 0, loc), loc)

	_, err := svc.ToggleFavorite(context.Background(), "ghost")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
