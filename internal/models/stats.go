package models

// DayStats holds completion progress for a single day.
type DayStats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
}

// Stats holds overall and per-day completion progress.
type Stats struct {
	TotalTasks      int                 `json:"total_tasks"`
	CompletedTasks  int                 `json:"completed_tasks"`
	TotalUsers      int                 `json:"total_users"`
	OverallProgress float64             `json:"overall_progress"`
	StatsByDay      map[string]DayStats `json:"stats_by_day"`
}
