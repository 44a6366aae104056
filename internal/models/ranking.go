package models

// RankingEntry is one row of the points ranking.
type RankingEntry struct {
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	AvatarColor    string `json:"avatar_color"`
	Points         int    `json:"points"`
	TasksCompleted int    `json:"tasks_completed"`
	Position       int    `json:"position"`
}
