package dto

import "time"

// CreateCourseRequest is the payload for defining a course
type CreateCourseRequest struct {
	Title       string    `json:"title" binding:"required" example:"Intro"`
	Duration    string    `json:"duration" binding:"required" example:"4 weeks"`
	StartDate   time.Time `json:"startDate" binding:"required" example:"2024-01-01T00:00:00Z"`
	EndDate     time.Time `json:"endDate" binding:"required" example:"2024-01-28T00:00:00Z"`
	Template    string    `json:"template" binding:"required"`
	Description *string   `json:"description,omitempty"`
}

// UpdateCourseRequest is the payload for updating a course.
// Nil fields keep their current value.
type UpdateCourseRequest struct {
	Title       *string    `json:"title,omitempty"`
	Duration    *string    `json:"duration,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Template    *string    `json:"template,omitempty"`
	Description *string    `json:"description,omitempty"`
}
