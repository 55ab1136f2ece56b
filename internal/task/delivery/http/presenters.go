package http

import (
	"quick-task-capture/internal/model"
	"quick-task-capture/internal/task"
	"quick-task-capture/pkg/response"
)

// --- Request DTOs ---

type quickCaptureReq struct {
	Title string `json:"title" binding:"required,min=1,max=500"`
}

func (r quickCaptureReq) toInput() task.QuickCaptureInput {
	return task.QuickCaptureInput{Title: r.Title}
}

type previewReq struct {
	Title string `json:"title" binding:"required,max=500"`
}

func (r previewReq) toInput() task.PreviewInput {
	return task.PreviewInput{Title: r.Title}
}

type updateReq struct {
	ID    string `json:"-"`
	Title string `json:"title" binding:"required,min=1,max=500"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{ID: r.ID, Title: r.Title}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	RawTitle     string             `json:"raw_title"`
	ScheduledFor *response.DateTime `json:"scheduled_for,omitempty"`
	CalendarLink string             `json:"calendar_link,omitempty"`
	CreateTime   response.DateTime  `json:"create_time"`
	UpdateTime   response.DateTime  `json:"update_time"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		RawTitle:     t.RawTitle,
		ScheduledFor: response.NewDateTimePtr(t.ScheduledFor),
		CalendarLink: t.CalendarLink,
		CreateTime:   response.DateTime(t.CreateTime),
		UpdateTime:   response.DateTime(t.UpdateTime),
	}
}

type quickCaptureResp struct {
	Task    taskResp `json:"task"`
	Preview string   `json:"preview,omitempty"`
}

func (h *handler) newQuickCaptureResp(out task.QuickCaptureOutput) quickCaptureResp {
	return quickCaptureResp{
		Task:    newTaskResp(out.Task),
		Preview: out.Preview,
	}
}

type previewResp struct {
	Matched      bool               `json:"matched"`
	ScheduledFor *response.DateTime `json:"scheduled_for,omitempty"`
	CleanedTitle string             `json:"cleaned_title,omitempty"`
	Label        string             `json:"label,omitempty"`
}

func (h *handler) newPreviewResp(out task.PreviewOutput) previewResp {
	return previewResp{
		Matched:      out.Matched,
		ScheduledFor: response.NewDateTimePtr(out.ScheduledFor),
		CleanedTitle: out.CleanedTitle,
		Label:        out.Label,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks, Total: len(tasks)}
}
