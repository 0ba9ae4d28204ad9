package dto_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/internal/domains/task/model"
	"hotelops/internal/domains/task/model/dto"
	"hotelops/shared/validator"
)

func TestCreateTaskRequestToModel(t *testing.T) {
	t.Run("defaults to medium priority and pending status", func(t *testing.T) {
		req := dto.CreateTaskRequest{
			RoomID:   3,
			Title:    "Deep clean after checkout",
			TaskType: "cleaning",
		}

		task, err := req.ToModel(context.Background())
		require.NoError(t, err)

		assert.Equal(t, model.PriorityMedium, task.Priority)
		assert.Equal(t, model.TaskStatusPending, task.Status)
		assert.Nil(t, task.AssignedTo)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("explicit priority is kept", func(t *testing.T) {
		req := dto.CreateTaskRequest{
			RoomID:   3,
			Title:    "Fix leaking faucet",
			TaskType: "maintenance",
			Priority: "urgent",
		}

		task, err := req.ToModel(context.Background())
		require.NoError(t, err)

		assert.Equal(t, model.PriorityUrgent, task.Priority)
	})

	t.Run("malformed due date is rejected", func(t *testing.T) {
		due := "tomorrow"
		req := dto.CreateTaskRequest{
			RoomID:   3,
			Title:    "Inspect balcony",
			TaskType: "inspection",
			DueDate:  &due,
		}

		_, err := req.ToModel(context.Background())
		assert.Error(t, err)
	})
}

func TestCreateTaskRequestValidation(t *testing.T) {
	t.Run("task type outside the enum fails", func(t *testing.T) {
		req := dto.CreateTaskRequest{
			RoomID:   3,
			Title:    "Something",
			TaskType: "gardening",
		}
		assert.Error(t, validator.ValidateStruct(&req))
	})

	t.Run("priority outside the enum fails", func(t *testing.T) {
		req := dto.CreateTaskRequest{
			RoomID:   3,
			Title:    "Something",
			TaskType: "cleaning",
			Priority: "asap",
		}
		assert.Error(t, validator.ValidateStruct(&req))
	})
}
