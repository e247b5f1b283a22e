// Package identifier produces the public-facing identifiers printed on
// certificates and embedded in validation URLs.
package identifier

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	participantPrefix = "PART"
	credentialPrefix  = "CERT"

	suffixLength = 4
	maxAttempts  = 5

	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ExistsFunc reports whether a candidate identifier is already taken in the
// store. It is injected so the generator stays independent of the storage
// layer.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Generator creates public identifiers for participants and credentials.
type Generator struct {
	now func() int64 // millisecond clock, swappable in tests
}

// New creates a Generator backed by the wall clock.
func New() *Generator {
	return &Generator{now: func() int64 { return time.Now().UnixMilli() }}
}

// ParticipantID generates a short, readable participant identifier of the
// form PART-<base36 ms timestamp>-<4 random base36 chars>. The candidate is
// checked against the store; on collision a new random suffix is drawn while
// the timestamp segment is kept, up to 5 attempts in total. If every attempt
// collides the identifier falls back to PART-<uuid>, which is assumed unique.
func (g *Generator) ParticipantID(ctx context.Context, exists ExistsFunc) (string, error) {
	timestamp := strings.ToUpper(strconv.FormatInt(g.now(), 36))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := participantPrefix + "-" + timestamp + "-" + randomSuffix()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return participantPrefix + "-" + uuid.New().String(), nil
}

// CredentialID generates an unguessable credential identifier of the form
// CERT-<32 uppercase hex chars>. The full 128 bits of randomness make a
// collision practically impossible, so no store check is performed; the
// unique constraint on the credentials table is the safety net.
func (g *Generator) CredentialID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return credentialPrefix + "-" + strings.ToUpper(raw)
}

func randomSuffix() string {
	var b strings.Builder
	b.Grow(suffixLength)
	for i := 0; i < suffixLength; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return b.String()
}
