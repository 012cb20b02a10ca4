package favorite

import "time"

// Favorite links a user account to a bookmarked place.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
}
