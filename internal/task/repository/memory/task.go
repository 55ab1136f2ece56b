package memory

import (
	"context"
	"sort"

	"quick-task-capture/internal/model"
	"quick-task-capture/internal/task/repository"
)

func (r *implRepository) Create(_ context.Context, t model.Task) error {
	r.tasks.Add(t.ID, t)
	return nil
}

func (r *implRepository) Get(_ context.Context, userID, id string) (model.Task, error) {
	t, ok := r.tasks.Get(id)
	if !ok || t.UserID != userID {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) List(_ context.Context, userID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range r.tasks.Values() {
		if t.UserID == userID {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreateTime.After(out[j].CreateTime)
	})
	return out, nil
}

func (r *implRepository) Update(_ context.Context, t model.Task) error {
	existing, ok := r.tasks.Get(t.ID)
	if !ok || existing.UserID != t.UserID {
		return repository.ErrNotFound
	}
	r.tasks.Add(t.ID, t)
	return nil
}

func (r *implRepository) Delete(_ context.Context, userID, id string) error {
	t, ok := r.tasks.Get(id)
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	r.tasks.Remove(id)
	return nil
}
