package dto

import (
	"context"
	"time"

	"hotelops/internal/domains/task/model"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateTaskRequest struct {
	RoomID      int64   `json:"room_id"     validate:"required,gt=0"`
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	TaskType    string  `json:"task_type"   validate:"required,oneof=cleaning maintenance inspection"`
	Priority    string  `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"due_date"    validate:"omitempty"`
}

// ToModel applies the medium/pending defaults. Tasks start unassigned.
func (c *CreateTaskRequest) ToModel(_ context.Context) (model.Task, error) {
	var dueDate *time.Time

	if c.DueDate != nil {
		parsed, err := timezone.Parse(constant.DateFormat, *c.DueDate)
		if err != nil {
			return model.Task{}, failure.BadRequestFromString("due_date must be a valid RFC3339 timestamp")
		}

		dueDate = &parsed
	}

	priority := model.PriorityMedium
	if c.Priority != "" {
		priority = model.Priority(c.Priority)
	}

	now := timezone.Now()

	return model.Task{
		RoomID:      c.RoomID,
		Title:       c.Title,
		Description: c.Description,
		TaskType:    model.TaskType(c.TaskType),
		Priority:    priority,
		Status:      model.TaskStatusPending,
		DueDate:     dueDate,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type TaskResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"room_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TaskType    string  `json:"task_type"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AssignedTo  *int64  `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Title = model.Title
	r.Description = model.Description
	r.TaskType = string(model.TaskType)
	r.Priority = string(model.Priority)
	r.Status = string(model.Status)
	r.AssignedTo = model.AssignedTo
	r.DueDate = formatTime(model.DueDate)
	r.CompletedAt = formatTime(model.CompletedAt)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
