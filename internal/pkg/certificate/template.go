// Package certificate turns a course template and a resolved credential view
// into the final certificate document.
package certificate

import (
	"strings"
	"time"
)

// DateLayout is the human-readable format used for every date printed on a
// certificate. Course authors rely on it, treat it as part of the template
// contract.
const DateLayout = "January 2, 2006"

// RenderData is the fully resolved credential view fed into a template.
type RenderData struct {
	ParticipantName string
	ParticipantID   string
	Organization    string
	ClassYear       string
	StreamMajor     string
	CourseTitle     string
	Duration        string
	StartDate       time.Time
	EndDate         time.Time
	IssueDate       time.Time
	CredentialID    string
	ValidationURL   string
	QRCodeDataURI   string
}

// FillTemplate substitutes every occurrence of each recognized {{TOKEN}}
// placeholder in the course template. Values are inserted verbatim, without
// HTML escaping: the template author is trusted. Unrecognized tokens are left
// untouched.
func FillTemplate(template string, data RenderData) string {
	replacements := []struct {
		token string
		value string
	}{
		{"STUDENT_NAME", data.ParticipantName}, // legacy alias of PARTICIPANT_NAME
		{"PARTICIPANT_NAME", data.ParticipantName},
		{"COURSE_TITLE", data.CourseTitle},
		{"DURATION", data.Duration},
		{"START_DATE", data.StartDate.Format(DateLayout)},
		{"END_DATE", data.EndDate.Format(DateLayout)},
		{"ISSUE_DATE", data.IssueDate.Format(DateLayout)},
		{"ORGANIZATION", data.Organization},
		{"CLASS_YEAR", data.ClassYear},
		{"STREAM_MAJOR", data.StreamMajor},
		{"PARTICIPANT_ID", data.ParticipantID},
		{"CREDENTIAL_ID", data.CredentialID},
		{"VALIDATION_URL", data.ValidationURL},
		{"QR_CODE", data.QRCodeDataURI},
	}

	result := template
	for _, r := range replacements {
		result = strings.ReplaceAll(result, "{{"+r.token+"}}", r.value)
	}
	return result
}
