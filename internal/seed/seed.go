package seed

import (
	"context"
	"fmt"

	"github.com/imaciel7/lar-doce-api/internal/logger"
	"github.com/imaciel7/lar-doce-api/internal/models"
)

// UserReader lists existing users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter inserts users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// TaskWriter inserts tasks.
type TaskWriter interface {
	Save(ctx context.Context, task *models.TaskDB) error
}

type seedUser struct {
	name        string
	username    string
	password    string
	avatarColor string
}

var seedUsers = []seedUser{
	{name: "Igor", username: "igor", password: "12345", avatarColor: "bg-sky-500"},
	{name: "Beatriz", username: "beatriz", password: "12345", avatarColor: "bg-pink-500"},
	{name: "Gabriela", username: "gabriela", password: "12345", avatarColor: "bg-emerald-500"},
	{name: "Salomão", username: "salomao", password: "12345", avatarColor: "bg-amber-500"},
	{name: "Flavia", username: "flavia", password: "12345", avatarColor: "bg-purple-500"},
}

// One week of chores: each day gets the same eight chores, with the
// assignee rotating through the household day by day.
var seedChores = []string{
	"Lavar a louça",
	"Limpar o fogão",
	"Limpar o chão",
	"Lavar o banheiro",
	"Estender a roupa",
	"Colocar roupa na máquina",
	"Tirar o lixo",
	"Varrer a casa",
}

// Run creates the initial household when the user table is empty:
// five users and a full week of chores, eight per day. It is a no-op
// when any user already exists.
func Run(ctx context.Context, users UserReader, userWriter UserWriter, taskWriter TaskWriter) error {
	existing, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list users: %w", err)
	}
	if len(existing) > 0 {
		logger.Log.Infow("seed skipped, users already present", "count", len(existing))
		return nil
	}

	ids := make([]int64, 0, len(seedUsers))
	for _, su := range seedUsers {
		user := &models.UserDB{
			Name:        su.name,
			Username:    su.username,
			AvatarColor: su.avatarColor,
		}
		if err := user.SetPassword(su.password); err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", su.username, err)
		}
		if err := userWriter.Save(ctx, user); err != nil {
			return fmt.Errorf("seed: save user %s: %w", su.username, err)
		}
		ids = append(ids, user.ID)
	}

	count := 0
	for di, day := range models.Days {
		for ci, chore := range seedChores {
			task := &models.TaskDB{
				Day:            day,
				TaskName:       chore,
				Points:         models.PointsFor(chore),
				AssignedUserID: ids[(di+ci)%len(ids)],
			}
			if err := taskWriter.Save(ctx, task); err != nil {
				return fmt.Errorf("seed: save task %q on %s: %w", chore, day, err)
			}
			count++
		}
	}

	logger.Log.Infow("seed completed", "users", len(ids), "tasks", count)
	return nil
}
