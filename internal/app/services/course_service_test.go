package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/apperrors"
)

// fakeCourseStore is an in-memory stand-in for the course repository.
type fakeCourseStore struct {
	nextID  int64
	courses map[int64]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		nextID:  1,
		courses: make(map[int64]*models.Course),
	}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	result := *course
	return &result, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context, search string) ([]*models.Course, error) {
	var result []*models.Course
	for _, course := range f.courses {
		if search == "" || strings.Contains(strings.ToLower(course.Title), strings.ToLower(search)) {
			c := *course
			result = append(result, &c)
		}
	}
	return result, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func validCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:     "Intro",
		Duration:  "4 weeks",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		Template:  "<h1>{{COURSE_TITLE}}</h1>",
	}
}

func TestCreateCourse(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	course, err := service.Create(context.Background(), validCourseRequest())
	require.NoError(t, err)

	assert.Equal(t, "Intro", course.Title)
	assert.Equal(t, "4 weeks", course.Duration)
	assert.NotZero(t, course.ID)
}

func TestCreateCourseMissingTemplate(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	req := validCourseRequest()
	req.Template = "   "

	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourseEndBeforeStart(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	req := validCourseRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCoursePartial(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	created, err := service.Create(context.Background(), validCourseRequest())
	require.NoError(t, err)

	newTemplate := "<h1>{{COURSE_TITLE}}</h1><p>{{PARTICIPANT_NAME}}</p>"
	updated, err := service.Update(context.Background(), created.ID, &dto.UpdateCourseRequest{
		Template: &newTemplate,
	})
	require.NoError(t, err)

	assert.Equal(t, newTemplate, updated.Template)
	assert.Equal(t, "Intro", updated.Title)
}

func TestUpdateCourseInvertedDates(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	created, err := service.Create(context.Background(), validCourseRequest())
	require.NoError(t, err)

	badEnd := created.StartDate.AddDate(0, 0, -1)
	_, err = service.Update(context.Background(), created.ID, &dto.UpdateCourseRequest{
		EndDate: &badEnd,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourseNotFound(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	title := "Advanced"
	_, err := service.Update(context.Background(), 999, &dto.UpdateCourseRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetAllCoursesSearch(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	_, err := service.Create(context.Background(), validCourseRequest())
	require.NoError(t, err)

	advanced := validCourseRequest()
	advanced.Title = "Advanced Networking"
	_, err = service.Create(context.Background(), advanced)
	require.NoError(t, err)

	matches, err := service.GetAll(context.Background(), "networking")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Advanced Networking", matches[0].Title)
}

func TestDeleteCourse(t *testing.T) {
	store := newFakeCourseStore()
	service := NewCourseService(store)

	created, err := service.Create(context.Background(), validCourseRequest())
	require.NoError(t, err)

	removed, err := service.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.Empty(t, store.courses)
}

func TestDeleteCourseNotFound(t *testing.T) {
	service := NewCourseService(newFakeCourseStore())

	_, err := service.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
