package identifier

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	participantIDPattern = regexp.MustCompile(`^PART-[0-9A-Z]+-[0-9A-Z]{4}$`)
	fallbackIDPattern    = regexp.MustCompile(`^PART-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	credentialIDPattern  = regexp.MustCompile(`^CERT-[0-9A-F]{32}$`)
)

func neverExists(context.Context, string) (bool, error) {
	return false, nil
}

func TestParticipantIDFormat(t *testing.T) {
	g := New()

	id, err := g.ParticipantID(context.Background(), neverExists)
	require.NoError(t, err)
	assert.Regexp(t, participantIDPattern, id)
}

func TestParticipantIDEmbedsTimestamp(t *testing.T) {
	g := &Generator{now: func() int64 { return 1700000000000 }}

	id, err := g.ParticipantID(context.Background(), neverExists)
	require.NoError(t, err)

	expected := strings.ToUpper(strconv.FormatInt(1700000000000, 36))
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "PART", parts[0])
	assert.Equal(t, expected, parts[1])
	assert.Len(t, parts[2], 4)
}

func TestParticipantIDRetriesOnCollision(t *testing.T) {
	g := New()

	calls := 0
	seen := make(map[string]bool)
	exists := func(_ context.Context, id string) (bool, error) {
		calls++
		seen[id] = true
		return calls <= 4, nil
	}

	id, err := g.ParticipantID(context.Background(), exists)
	require.NoError(t, err)
	assert.Equal(t, 5, calls)
	assert.Regexp(t, participantIDPattern, id)

	// All drawn candidates keep the same timestamp segment
	var timestamps []string
	for candidate := range seen {
		timestamps = append(timestamps, strings.Split(candidate, "-")[1])
	}
	for _, ts := range timestamps {
		assert.Equal(t, timestamps[0], ts)
	}
}

func TestParticipantIDFallsBackAfterExhaustedAttempts(t *testing.T) {
	g := New()

	calls := 0
	alwaysTaken := func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}

	id, err := g.ParticipantID(context.Background(), alwaysTaken)
	require.NoError(t, err)
	assert.Equal(t, 5, calls)
	assert.Regexp(t, fallbackIDPattern, id)
}

func TestParticipantIDPropagatesStoreError(t *testing.T) {
	g := New()

	storeErr := errors.New("connection reset")
	failing := func(context.Context, string) (bool, error) {
		return false, storeErr
	}

	_, err := g.ParticipantID(context.Background(), failing)
	assert.ErrorIs(t, err, storeErr)
}

func TestCredentialIDFormat(t *testing.T) {
	g := New()

	id := g.CredentialID()
	assert.Regexp(t, credentialIDPattern, id)
}

func TestCredentialIDsAreDistinct(t *testing.T) {
	g := New()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.CredentialID()
		assert.False(t, seen[id], "duplicate credential identifier %s", id)
		seen[id] = true
	}
}
