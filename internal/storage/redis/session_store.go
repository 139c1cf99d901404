package redis

import (
	"context"
	"fmt"

	"github.com/goodtune/cardiotrack/internal/storage"
	"github.com/redis/go-redis/v9"
)

const sessionIDSet = "cardiotrack:sessions"

type sessionStore struct {
	client *redis.Client
}

func sessionKey(id string) string {
	return fmt.Sprintf("cardiotrack:session:%s", id)
}

// List returns all sessions sorted by the requested field and order.
func (s *sessionStore) List(ctx context.Context, params storage.SortParams) ([]storage.Session, error) {
	ids, err := s.client.SMembers(ctx, sessionIDSet).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]storage.Session, 0, len(ids))
	if len(ids) == 0 {
		return sessions, nil
	}

	// Use pipeline for efficient batch retrieval
	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, sessionKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil || len(data) == 0 {
			continue
		}
		session, err := parseSession(data)
		if err != nil {
			continue
		}
		sessions = append(sessions, *session)
	}

	storage.SortSessions(sessions, params)
	return sessions, nil
}

// Get retrieves a session by ID.
func (s *sessionStore) Get(ctx context.Context, id string) (*storage.Session, error) {
	data, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, storage.ErrNotFound
	}
	return parseSession(data)
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
	return s.put(ctx, *session)
}

// Update overwrites an existing session.
func (s *sessionStore) Update(ctx context.Context, session storage.Session) error {
	exists, err := s.client.SIsMember(ctx, sessionIDSet, session.ID).Result()
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrNotFound
	}
	return s.put(ctx, session)
}

// ReplaceAll drops the collection and inserts the given sessions.
func (s *sessionStore) ReplaceAll(ctx context.Context, sessions []storage.Session) (int, error) {
	ids, err := s.client.SMembers(ctx, sessionIDSet).Result()
	if err != nil {
		return 0, err
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, sessionKey(id))
	}
	pipe.Del(ctx, sessionIDSet)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return 0, err
	}

	inserted := 0
	for i := range sessions {
		session := sessions[i]
		if session.ID == "" {
			id, err := storage.NewID()
			if err != nil {
				return inserted, err
			}
			session.ID = id
		}
		if err := s.put(ctx, session); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (s *sessionStore) put(ctx context.Context, session storage.Session) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(session.ID), sessionFields(session))
	pipe.SAdd(ctx, sessionIDSet, session.ID)
	_, err := pipe.Exec(ctx)
	return err
}
