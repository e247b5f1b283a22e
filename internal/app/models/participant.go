package models

import "time"

// Participant represents a person who can receive credentials.
type Participant struct {
	ID            int64     `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name"`
	ParticipantID string    `json:"participantId" db:"participant_id"`
	ClassYear     *string   `json:"classYear,omitempty" db:"class_year"`
	StreamMajor   *string   `json:"streamMajor,omitempty" db:"stream_major"`
	Organization  string    `json:"organization" db:"organization"`
	Email         *string   `json:"email,omitempty" db:"email"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
