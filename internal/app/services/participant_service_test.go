package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/identifier"
)

// fakeParticipantStore is an in-memory stand-in for the participant repository.
type fakeParticipantStore struct {
	nextID       int64
	participants map[int64]*models.Participant
}

func newFakeParticipantStore() *fakeParticipantStore {
	return &fakeParticipantStore{
		nextID:       1,
		participants: make(map[int64]*models.Participant),
	}
}

func (f *fakeParticipantStore) Create(_ context.Context, participant *models.Participant) error {
	participant.ID = f.nextID
	f.nextID++
	stored := *participant
	f.participants[participant.ID] = &stored
	return nil
}

func (f *fakeParticipantStore) GetByID(_ context.Context, id int64) (*models.Participant, error) {
	participant, ok := f.participants[id]
	if !ok {
		return nil, apperrors.ErrParticipantNotFound
	}
	result := *participant
	return &result, nil
}

func (f *fakeParticipantStore) GetAll(_ context.Context, search string) ([]*models.Participant, error) {
	var result []*models.Participant
	for _, participant := range f.participants {
		if search == "" ||
			strings.Contains(strings.ToLower(participant.FullName), strings.ToLower(search)) ||
			strings.Contains(strings.ToLower(participant.ParticipantID), strings.ToLower(search)) ||
			strings.Contains(strings.ToLower(participant.Organization), strings.ToLower(search)) {
			p := *participant
			result = append(result, &p)
		}
	}
	return result, nil
}

func (f *fakeParticipantStore) ExistsByParticipantID(_ context.Context, participantID string) (bool, error) {
	for _, participant := range f.participants {
		if participant.ParticipantID == participantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeParticipantStore) Update(_ context.Context, participant *models.Participant) error {
	if _, ok := f.participants[participant.ID]; !ok {
		return apperrors.ErrParticipantNotFound
	}
	stored := *participant
	f.participants[participant.ID] = &stored
	return nil
}

func (f *fakeParticipantStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.participants[id]; !ok {
		return apperrors.ErrParticipantNotFound
	}
	delete(f.participants, id)
	return nil
}

func newParticipantService() (*ParticipantService, *fakeParticipantStore) {
	store := newFakeParticipantStore()
	return NewParticipantService(store, identifier.New()), store
}

func TestCreateParticipant(t *testing.T) {
	service, _ := newParticipantService()

	participant, err := service.Create(context.Background(), &dto.CreateParticipantRequest{
		FullName:     "Jane Doe",
		Organization: "Acme",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", participant.FullName)
	assert.Equal(t, "Acme", participant.Organization)
	assert.Regexp(t, `^PART-[0-9A-Z]+-[0-9A-Z]{4}$`, participant.ParticipantID)
	assert.NotZero(t, participant.ID)
}

func TestCreateParticipantMissingFields(t *testing.T) {
	service, _ := newParticipantService()

	_, err := service.Create(context.Background(), &dto.CreateParticipantRequest{
		FullName: "Jane Doe",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateParticipantsHaveDistinctIdentifiers(t *testing.T) {
	service, _ := newParticipantService()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		participant, err := service.Create(context.Background(), &dto.CreateParticipantRequest{
			FullName:     "Participant",
			Organization: "Acme",
		})
		require.NoError(t, err)
		assert.False(t, seen[participant.ParticipantID], "duplicate identifier %s", participant.ParticipantID)
		seen[participant.ParticipantID] = true
	}
}

func TestUpdateParticipantPartial(t *testing.T) {
	service, _ := newParticipantService()

	created, err := service.Create(context.Background(), &dto.CreateParticipantRequest{
		FullName:     "Jane Doe",
		Organization: "Acme",
	})
	require.NoError(t, err)

	newName := "Jane A. Doe"
	classYear := "2024"
	updated, err := service.Update(context.Background(), created.ID, &dto.UpdateParticipantRequest{
		FullName:  &newName,
		ClassYear: &classYear,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane A. Doe", updated.FullName)
	require.NotNil(t, updated.ClassYear)
	assert.Equal(t, "2024", *updated.ClassYear)
	assert.Equal(t, "Acme", updated.Organization)
	assert.Equal(t, created.ParticipantID, updated.ParticipantID)
}

func TestUpdateParticipantNotFound(t *testing.T) {
	service, _ := newParticipantService()

	name := "Nobody"
	_, err := service.Update(context.Background(), 999, &dto.UpdateParticipantRequest{FullName: &name})
	assert.ErrorIs(t, err, apperrors.ErrParticipantNotFound)
}

func TestGetAllParticipantsSearch(t *testing.T) {
	service, _ := newParticipantService()

	_, err := service.Create(context.Background(), &dto.CreateParticipantRequest{FullName: "Jane Doe", Organization: "Acme"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), &dto.CreateParticipantRequest{FullName: "John Smith", Organization: "Globex"})
	require.NoError(t, err)

	all, err := service.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matches, err := service.GetAll(context.Background(), "jane")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Jane Doe", matches[0].FullName)
}

func TestDeleteParticipantReturnsRemovedRow(t *testing.T) {
	service, store := newParticipantService()

	created, err := service.Create(context.Background(), &dto.CreateParticipantRequest{
		FullName:     "Jane Doe",
		Organization: "Acme",
	})
	require.NoError(t, err)

	removed, err := service.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ParticipantID, removed.ParticipantID)
	assert.Empty(t, store.participants)
}

func TestDeleteParticipantNotFound(t *testing.T) {
	service, _ := newParticipantService()

	_, err := service.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrParticipantNotFound)
}
