package certificate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFillTemplateReplacesAllOccurrences(t *testing.T) {
	template := "<h1>{{PARTICIPANT_NAME}}</h1><p>Awarded to {{PARTICIPANT_NAME}}</p>"

	result := FillTemplate(template, RenderData{ParticipantName: "Jane Doe"})

	assert.Equal(t, "<h1>Jane Doe</h1><p>Awarded to Jane Doe</p>", result)
}

func TestFillTemplateLeavesUnknownTokensUntouched(t *testing.T) {
	template := "{{PARTICIPANT_NAME}} {{SOMETHING_ELSE}} {{COURSE_TITLE}}"

	result := FillTemplate(template, RenderData{
		ParticipantName: "Jane Doe",
		CourseTitle:     "Intro",
	})

	assert.Equal(t, "Jane Doe {{SOMETHING_ELSE}} Intro", result)
}

func TestFillTemplateNoTokens(t *testing.T) {
	template := "<html><body>static document</body></html>"

	result := FillTemplate(template, RenderData{ParticipantName: "Jane Doe"})

	assert.Equal(t, template, result)
}

func TestFillTemplateStudentNameAlias(t *testing.T) {
	result := FillTemplate("Presented to {{STUDENT_NAME}}", RenderData{ParticipantName: "Jane Doe"})

	assert.Equal(t, "Presented to Jane Doe", result)
}

func TestFillTemplateDateFormat(t *testing.T) {
	template := "{{START_DATE}} / {{END_DATE}} / {{ISSUE_DATE}}"

	result := FillTemplate(template, RenderData{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 28),
		IssueDate: date(2024, time.February, 2),
	})

	assert.Equal(t, "January 1, 2024 / January 28, 2024 / February 2, 2024", result)
}

func TestFillTemplateFullCertificate(t *testing.T) {
	template := `<html><body>
<h1>{{COURSE_TITLE}}</h1>
<p>{{PARTICIPANT_NAME}} ({{PARTICIPANT_ID}}) of {{ORGANIZATION}}</p>
<p>{{DURATION}}, {{START_DATE}} to {{END_DATE}}</p>
<p>Credential {{CREDENTIAL_ID}}, verify at {{VALIDATION_URL}}</p>
<img src="{{QR_CODE}}"/>
</body></html>`

	result := FillTemplate(template, RenderData{
		ParticipantName: "Jane Doe",
		ParticipantID:   "PART-ABC123-XY9Z",
		Organization:    "Acme",
		CourseTitle:     "Intro",
		Duration:        "4 weeks",
		StartDate:       date(2024, time.January, 1),
		EndDate:         date(2024, time.January, 28),
		IssueDate:       date(2024, time.February, 2),
		CredentialID:    "CERT-0123456789ABCDEF0123456789ABCDEF",
		ValidationURL:   "http://localhost:8080/validate/CERT-0123456789ABCDEF0123456789ABCDEF",
		QRCodeDataURI:   "data:image/png;base64,AAAA",
	})

	assert.Contains(t, result, "Jane Doe")
	assert.Contains(t, result, "Intro")
	assert.Contains(t, result, "PART-ABC123-XY9Z")
	assert.Contains(t, result, "4 weeks")
	assert.Contains(t, result, "data:image/png;base64,AAAA")
	assert.NotContains(t, result, "{{PARTICIPANT_NAME}}")
	assert.NotContains(t, result, "{{COURSE_TITLE}}")
	assert.NotContains(t, result, "{{")
}
