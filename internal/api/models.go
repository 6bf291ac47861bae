package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rkarlsb/taskline/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse defines the acknowledgment returned by the signup
// endpoint. The password and its hash are never echoed back.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the signed JWT presented as a Bearer credential on
	// protected routes until it expires.
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Priority is an int that also accepts a quoted numeric string in JSON.
// Form-driven clients submit input values unconverted, so "2" and 2 must
// both coerce to the same priority.
type Priority int

// UnmarshalJSON implements json.Unmarshaler.
// An empty or null value decodes to zero so the required-field validation
// reports it, rather than failing the whole decode.
func (p *Priority) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("priority must be an integer: %w", err)
	}
	*p = Priority(n)
	return nil
}

// TaskRequest defines the payload for creating or updating a task.
// All three fields are required; priority must land in one of the client's
// three display buckets.
type TaskRequest struct {
	Title    string   `json:"title"    validate:"required"`
	Priority Priority `json:"priority" validate:"required,gte=1,lte=3"`
	DueDate  string   `json:"dueDate"  validate:"required"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner"`
	Title     string `json:"title"`
	Priority  int    `json:"priority"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Owner:     task.Owner,
		Title:     task.Title,
		Priority:  task.Priority,
		DueDate:   task.DueDate,
		Completed: task.Completed,
	}
}
