package dto

// CreateParticipantRequest is the payload for registering a participant
type CreateParticipantRequest struct {
	FullName     string  `json:"fullName" binding:"required" example:"Jane Doe"`
	ClassYear    *string `json:"classYear,omitempty" example:"2024"`
	StreamMajor  *string `json:"streamMajor,omitempty" example:"Computer Science"`
	Organization string  `json:"organization" binding:"required" example:"Acme"`
	Email        *string `json:"email,omitempty" example:"jane@acme.example"`
	Phone        *string `json:"phone,omitempty" example:"+1 555 0100"`
}

// UpdateParticipantRequest is the payload for updating a participant.
// Nil fields keep their current value.
type UpdateParticipantRequest struct {
	FullName     *string `json:"fullName,omitempty"`
	ClassYear    *string `json:"classYear,omitempty"`
	StreamMajor  *string `json:"streamMajor,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}
