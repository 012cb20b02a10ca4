package schema

// StatsDailyPlaceViewTable represents the 'stats.dailyplaceview' table
type StatsDailyPlaceViewTable struct {
	Table          string
	Day            string
	PlaceID        string
	ViewCount      string
	ClickCount     string
	DirectionCount string
}

// StatsDailyPlaceView is the schema definition for stats.dailyplaceview
var StatsDailyPlaceView = StatsDailyPlaceViewTable{
	Table:          "stats.dailyplaceview",
	Day:            "day",
	PlaceID:        "placeid",
	ViewCount:      "viewcount",
	ClickCount:     "clickcount",
	DirectionCount: "directioncount",
}
