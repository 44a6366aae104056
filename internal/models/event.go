package models

// TaskEvent is published to Kafka whenever a task's completion state flips.
type TaskEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	TaskID    int64  `json:"task_id"`   // Toggled task
	UserID    int64  `json:"user_id"`   // Acting user
	Completed bool   `json:"completed"` // New completion state
	Points    int    `json:"points"`    // Task point value
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
