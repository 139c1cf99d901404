package storage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Session represents one recorded cardio exercise instance.
// JSON field names match the historical dataset, so imported records
// round-trip unchanged.
type Session struct {
	ID           string `json:"id"`
	YouTubeURL   string `json:"youTubeUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	FinishTime   int64  `json:"finishTime"` // epoch milliseconds
	Description  string `json:"description"`
	Length       int64  `json:"length"` // seconds
	IsFavorite   bool   `json:"isFavorite"`
}

// IsManual reports whether the session was logged by hand rather than
// recorded from a video. Manual sessions carry the exercise type in
// Description.
func (s *Session) IsManual() bool {
	return s.YouTubeURL == ""
}

// SortField identifies a session field usable as a sort key.
type SortField string

const (
	SortByFinishTime  SortField = "finishTime"
	SortByLength      SortField = "length"
	SortByDescription SortField = "description"
	SortByIsFavorite  SortField = "isFavorite"
)

// ParseSortField maps a request parameter to a known sort field,
// defaulting to finishTime.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByLength, SortByDescription, SortByIsFavorite:
		return SortField(s)
	default:
		return SortByFinishTime
	}
}

// SortOrder identifies the direction of a sorted listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps a request parameter to a sort order, defaulting
// to descending (most recent sessions first).
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// UnmarshalJSON implements json.Unmarshaler to normalize order to lowercase.
func (o *SortOrder) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	normalized := SortOrder(strings.ToLower(s))
	switch normalized {
	case SortAsc, SortDesc:
		*o = normalized
		return nil
	default:
		return fmt.Errorf("invalid sort order: %s (must be asc or desc)", s)
	}
}

// SortParams bundles the field and order for a session listing.
type SortParams struct {
	Field SortField
	Order SortOrder
}

// DefaultSort returns the listing order used when a request specifies
// nothing: newest finish time first.
func DefaultSort() SortParams {
	return SortParams{Field: SortByFinishTime, Order: SortDesc}
}
