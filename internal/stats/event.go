package stats

import "time"

// EventType identifies the kind of interaction a usage event records.
type EventType string

const (
	// EventPageView is a rendered listing page (home, category, discovery).
	EventPageView EventType = "page_view"
	// EventPlaceView is an opened place detail.
	EventPlaceView EventType = "place_view"
	// EventPlaceClick is a click-through from a listing to a place.
	EventPlaceClick EventType = "place_click"
	// EventDirectionClick is a tap on the route/directions action.
	EventDirectionClick EventType = "direction_click"
)

// Valid reports whether the type is one of the recognised event kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventPageView, EventPlaceView, EventPlaceClick, EventDirectionClick:
		return true
	}
	return false
}

// UsageEvent is a single append-only interaction record. Subject references
// and the user are all optional: a page view on the homepage carries none.
type UsageEvent struct {
	ID         string    `json:"id"`
	EventType  EventType `json:"event_type"`
	UserID     *string   `json:"user_id,omitempty"`
	CategoryID *string   `json:"category_id,omitempty"`
	PlaceID    *string   `json:"place_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DailyCategoryView is one row of the per-day category rollup.
type DailyCategoryView struct {
	Day        string `json:"day"`
	CategoryID string `json:"category_id"`
	ViewCount  int    `json:"view_count"`
}

// DailyPlaceView is one row of the per-day place rollup.
type DailyPlaceView struct {
	Day            string `json:"day"`
	PlaceID        string `json:"place_id"`
	ViewCount      int    `json:"view_count"`
	ClickCount     int    `json:"click_count"`
	DirectionCount int    `json:"direction_count"`
}

// ReportRow is one line of a date-range report: one subject on one calendar
// day, joined to the subject's current name so admin screens don't need a
// second lookup.
type ReportRow struct {
	SubjectID      string `json:"subject_id"`
	SubjectName    string `json:"subject_name"`
	Day            string `json:"day"`
	ViewCount      int    `json:"view_count"`
	ClickCount     int    `json:"click_count,omitempty"`
	DirectionCount int    `json:"direction_count,omitempty"`
}

// Report kinds accepted by the range report endpoints.
const (
	ReportKindCategory = "category"
	ReportKindPlace    = "place"
)
