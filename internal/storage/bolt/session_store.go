package bolt

import (
	"context"
	"fmt"

	"github.com/goodtune/cardiotrack/internal/storage"
	"go.etcd.io/bbolt"
)

type sessionStore struct {
	db *bbolt.DB
}

// List retrieves all sessions sorted by the requested field and order.
func (s *sessionStore) List(ctx context.Context, params storage.SortParams) ([]storage.Session, error) {
	sessions := make([]storage.Session, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSessions))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, v []byte) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var session storage.Session
			if err := unmarshal(v, &session); err != nil {
				return err
			}
			sessions = append(sessions, session)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	storage.SortSessions(sessions, params)
	return sessions, nil
}

// Get retrieves a session by ID.
func (s *sessionStore) Get(ctx context.Context, id string) (*storage.Session, error) {
	var session storage.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		bucket := tx.Bucket([]byte(bucketSessions))
		if bucket == nil {
			return storage.ErrNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrNotFound
		}

		return unmarshal(data, &session)
	})

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// Create persists a new session, assigning an ID when none is set.
func (s *sessionStore) Create(ctx context.Context, session *storage.Session) error {
	if session.ID == "" {
		id, err := storage.NewID()
		if err != nil {
			return err
		}
		session.ID = id
	}

	data, err := marshal(session)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		bucket := tx.Bucket([]byte(bucketSessions))
		if bucket == nil {
			return fmt.Errorf("sessions bucket missing")
		}
		return bucket.Put([]byte(session.ID), data)
	})
}

// Update overwrites an existing session.
func (s *sessionStore) Update(ctx context.Context, session storage.Session) error {
	data, err := marshal(session)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		bucket := tx.Bucket([]byte(bucketSessions))
		if bucket == nil {
			return storage.ErrNotFound
		}
		if bucket.Get([]byte(session.ID)) == nil {
			return storage.ErrNotFound
		}
		return bucket.Put([]byte(session.ID), data)
	})
}

// ReplaceAll drops the collection and inserts the given sessions.
func (s *sessionStore) ReplaceAll(ctx context.Context, sessions []storage.Session) (int, error) {
	inserted := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := tx.DeleteBucket([]byte(bucketSessions)); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("drop sessions bucket: %w", err)
		}
		bucket, err := tx.CreateBucket([]byte(bucketSessions))
		if err != nil {
			return fmt.Errorf("recreate sessions bucket: %w", err)
		}

		for i := range sessions {
			session := sessions[i]
			if session.ID == "" {
				id, err := storage.NewID()
				if err != nil {
					return err
				}
				session.ID = id
			}
			data, err := marshal(session)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(session.ID), data); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
