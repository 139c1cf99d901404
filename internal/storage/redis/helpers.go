package redis

import (
	"fmt"
	"strconv"

	"github.com/goodtune/cardiotrack/internal/storage"
)

// sessionFields converts a Session to a Redis hash
func sessionFields(session storage.Session) map[string]interface{} {
	isFavorite := "0"
	if session.IsFavorite {
		isFavorite = "1"
	}
	return map[string]interface{}{
		"id":            session.ID,
		"youtube_url":   session.YouTubeURL,
		"thumbnail_url": session.ThumbnailURL,
		"finish_time":   session.FinishTime,
		"description":   session.Description,
		"length":        session.Length,
		"is_favorite":   isFavorite,
	}
}

// parseSession converts a Redis hash to a Session
func parseSession(data map[string]string) (*storage.Session, error) {
	if len(data) == 0 {
		return nil, storage.ErrNotFound
	}

	finishTime, err := strconv.ParseInt(data["finish_time"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse finish_time: %w", err)
	}

	length, err := strconv.ParseInt(data["length"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse length: %w", err)
	}

	isFavorite, err := strconv.ParseBool(data["is_favorite"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse is_favorite: %w", err)
	}

	return &storage.Session{
		ID:           data["id"],
		YouTubeURL:   data["youtube_url"],
		ThumbnailURL: data["thumbnail_url"],
		FinishTime:   finishTime,
		Description:  data["description"],
		Length:       length,
		IsFavorite:   isFavorite,
	}, nil
}
