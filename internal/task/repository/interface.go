package repository

import (
	"context"

	"quick-task-capture/internal/model"
)

// Repository is the storage interface for captured tasks. Durable
// persistence belongs to external collaborators; implementations here only
// need to hold the working set between capture and commit.
type Repository interface {
	Create(ctx context.Context, t model.Task) error
	Get(ctx context.Context, userID, id string) (model.Task, error)
	List(ctx context.Context, userID string) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, userID, id string) error
}
