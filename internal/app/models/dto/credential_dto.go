package dto

// IssueCredentialRequest is the payload for issuing a credential
type IssueCredentialRequest struct {
	ParticipantID int64 `json:"participantId" binding:"required" example:"1"`
	CourseID      int64 `json:"courseId" binding:"required" example:"1"`
}

// ValidationResponse is the public verification result. A missing credential
// is reported as Valid=false with a generic message, never as an internal
// error.
type ValidationResponse struct {
	Valid      bool        `json:"valid"`
	Credential interface{} `json:"credential,omitempty"`
	Error      string      `json:"error,omitempty" example:"Credential not found or invalid"`
}
