package schema

// StatsDailyCategoryViewTable represents the 'stats.dailycategoryview' table
type StatsDailyCategoryViewTable struct {
	Table      string
	Day        string
	CategoryID string
	ViewCount  string
}

// StatsDailyCategoryView is the schema definition for stats.dailycategoryview
var StatsDailyCategoryView = StatsDailyCategoryViewTable{
	Table:      "stats.dailycategoryview",
	Day:        "day",
	CategoryID: "categoryid",
	ViewCount:  "viewcount",
}
