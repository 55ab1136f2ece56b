package memory

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"quick-task-capture/internal/model"
	"quick-task-capture/internal/task/repository"
	"quick-task-capture/pkg/log"
)

const defaultCapacity = 4096

type implRepository struct {
	l     log.Logger
	tasks *lru.Cache[string, model.Task]
}

// New creates a capacity-bounded in-memory Repository. The oldest tasks are
// evicted once capacity is reached.
func New(l log.Logger, capacity int) (repository.Repository, error) {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	cache, err := lru.New[string, model.Task](capacity)
	if err != nil {
		return nil, err
	}

	return &implRepository{l: l, tasks: cache}, nil
}
