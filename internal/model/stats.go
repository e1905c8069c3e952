package model

// TypeCounts breaks the publication count down by type.
type TypeCounts struct {
	Meditation int64 `json:"meditation"`
	Livret     int64 `json:"livret"`
	Livre      int64 `json:"livre"`
}

// ActivityPoint is one day of the recent-activity series.
type ActivityPoint struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
}

// StatsResponse is the admin dashboard payload.
type StatsResponse struct {
	TotalPublications int64           `json:"totalPublications"`
	ByType            TypeCounts      `json:"byType"`
	Admins            int64           `json:"admins"`
	RecentActivity    []ActivityPoint `json:"recentActivity"`
}
