package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldTaskType    = "task_type"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldAssignedTo  = "assigned_to"
	FieldDueDate     = "due_date"
	FieldCompletedAt = "completed_at"
)

type TaskType string

const (
	TaskTypeCleaning    TaskType = "cleaning"
	TaskTypeMaintenance TaskType = "maintenance"
	TaskTypeInspection  TaskType = "inspection"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type Task struct {
	ID          int64      `db:"id"`
	RoomID      int64      `db:"room_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	TaskType    TaskType   `db:"task_type"`
	Priority    Priority   `db:"priority"`
	Status      TaskStatus `db:"status"`
	AssignedTo  *int64     `db:"assigned_to"`
	DueDate     *time.Time `db:"due_date"`
	CompletedAt *time.Time `db:"completed_at"`
	model.Metadata
}
