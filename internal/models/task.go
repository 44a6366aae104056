package models

import "time"

// Canonical day-of-week labels, in week order.
const (
	Segunda = "Segunda"
	Terca   = "Terça"
	Quarta  = "Quarta"
	Quinta  = "Quinta"
	Sexta   = "Sexta"
	Sabado  = "Sábado"
	Domingo = "Domingo"
)

// Days lists the seven day labels in canonical order.
var Days = []string{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo}

// IsValidDay reports whether day is one of the seven canonical labels.
func IsValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// taskPoints maps well-known chore names to their point values.
var taskPoints = map[string]int{
	"Lavar a louça":            2,
	"Limpar o fogão":           1,
	"Limpar o chão":            1,
	"Lavar o banheiro":         3,
	"Estender a roupa":         1,
	"Colocar roupa na máquina": 1,
	"Tirar o lixo":             1,
	"Varrer a casa":            2,
}

// PointsFor returns the point value for a chore name, or 1 for unknown names.
func PointsFor(taskName string) int {
	if p, ok := taskPoints[taskName]; ok {
		return p
	}
	return 1
}

// TaskDB represents a task record in the database
type TaskDB struct {
	ID                int64      `json:"id" db:"id"`                                     // Primary key
	Day               string     `json:"day" db:"day"`                                   // Day-of-week label
	TaskName          string     `json:"task_name" db:"task_name"`                       // Chore description
	Points            int        `json:"points" db:"points"`                             // Point value
	AssignedUserID    int64      `json:"assigned_user_id" db:"assigned_user_id"`         // Owner responsible for the chore
	IsCompleted       bool       `json:"is_completed" db:"is_completed"`                 // Completion flag
	CompletedByUserID *int64     `json:"completed_by_user_id" db:"completed_by_user_id"` // Completer, nil while pending
	CompletedAt       *time.Time `json:"completed_at" db:"completed_at"`                 // Completion timestamp, nil while pending
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`                     // Creation timestamp
}
