package memory

import (
	"fmt"
	"strconv"

	"github.com/dtroode/gophtasks-server/internal/model"
)

const seedTaskCount = 10

// SeedTasks returns the initial task set: ten tasks alternately owned by users 1 and 2.
func SeedTasks() []model.Task {
	tasks := make([]model.Task, 0, seedTaskCount)
	for i := 0; i < seedTaskCount; i++ {
		tasks = append(tasks, model.Task{
			ID:          strconv.Itoa(i),
			Title:       fmt.Sprintf("Task %d", i),
			Description: fmt.Sprintf("Task %d description", i),
			UserID:      strconv.Itoa(i%2 + 1),
		})
	}
	return tasks
}

// SeedUsers returns the initial users with their well known tokens.
func SeedUsers() []model.User {
	return []model.User{
		{ID: "1", Name: "asilva", Token: "b0506867-77c3-4142-9437-1f627deebd67"},
		{ID: "2", Name: "pnunes", Token: "f1d1cdbc-97f0-41c4-b206-051250684b19"},
	}
}
