package dto

import (
	"time"

	"github.com/yukikurage/task-manager/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskStatusDTO represents a task status in API responses
type TaskStatusDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// LabelDTO represents a label in API responses
type LabelDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskDTO represents a task with its resolved references
type TaskDTO struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Author      UserDTO       `json:"author"`
	Executor    *UserDTO      `json:"executor"`
	TaskStatus  TaskStatusDTO `json:"taskStatus"`
	Labels      []LabelDTO    `json:"labels"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// ToTaskStatusDTO converts a TaskStatus model to TaskStatusDTO
func ToTaskStatusDTO(status models.TaskStatus) TaskStatusDTO {
	return TaskStatusDTO{
		ID:        status.ID,
		Name:      status.Name,
		CreatedAt: status.CreatedAt,
	}
}

// ToTaskStatusDTOs converts a slice of task statuses
func ToTaskStatusDTOs(statuses []models.TaskStatus) []TaskStatusDTO {
	items := make([]TaskStatusDTO, len(statuses))
	for i, status := range statuses {
		items[i] = ToTaskStatusDTO(status)
	}
	return items
}

// ToLabelDTO converts a Label model to LabelDTO
func ToLabelDTO(label models.Label) LabelDTO {
	return LabelDTO{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
	}
}

// ToLabelDTOs converts a slice of labels
func ToLabelDTOs(labels []models.Label) []LabelDTO {
	items := make([]LabelDTO, len(labels))
	for i, label := range labels {
		items[i] = ToLabelDTO(label)
	}
	return items
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Author:      ToUserDTO(task.Author),
		TaskStatus:  ToTaskStatusDTO(task.TaskStatus),
		Labels:      ToLabelDTOs(task.Labels),
		CreatedAt:   task.CreatedAt,
	}

	// Executor is optional
	if task.Executor != nil {
		executor := ToUserDTO(*task.Executor)
		dto.Executor = &executor
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
