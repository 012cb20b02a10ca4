package schema

// StatsUsageEventTable represents the 'stats.usageevent' table
type StatsUsageEventTable struct {
	Table      string
	ID         string
	EventType  string
	UserID     string
	CategoryID string
	PlaceID    string
	OccurredAt string
}

// StatsUsageEvent is the schema definition for stats.usageevent
var StatsUsageEvent = StatsUsageEventTable{
	Table:      "stats.usageevent",
	ID:         "id",
	EventType:  "eventtype",
	UserID:     "userid",
	CategoryID: "categoryid",
	PlaceID:    "placeid",
	OccurredAt: "occurredat",
}

func (t StatsUsageEventTable) Columns() []string {
	return []string{t.ID, t.EventType, t.UserID, t.CategoryID, t.PlaceID, t.OccurredAt}
}
