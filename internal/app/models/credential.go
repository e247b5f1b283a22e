package models

import "time"

// Credential status values. Only StatusActive is assigned today; the column
// exists so a revocation lifecycle can be added without a schema change.
const (
	StatusActive = "active"
)

// Credential links one participant to one course and is the unit of public
// verification. Rows are created only through issuance and are removed when
// either side of the link is deleted (cascade).
type Credential struct {
	ID            int64     `json:"id" db:"id"`
	CredentialID  string    `json:"credentialId" db:"credential_id"`
	ParticipantID int64     `json:"participantId" db:"participant_id"`
	CourseID      int64     `json:"courseId" db:"course_id"`
	IssueDate     time.Time `json:"issueDate" db:"issue_date"`
	ValidationURL string    `json:"validationUrl" db:"validation_url"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated on joined reads)
	Participant *Participant `json:"participant,omitempty"`
	Course      *Course      `json:"course,omitempty"`
}
