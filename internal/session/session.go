package session

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/seamlist/pageflow/internal/useragent"
)

// Session is one entry in the browser-session list.
type Session struct {
	// ID is the session's ULID. Its string form doubles as the session's
	// pagination cursor.
	ID ulid.ULID

	// UserAgent is the raw user agent the session was created with.
	UserAgent string

	// Device is the coarse device class derived from UserAgent.
	Device useragent.DeviceType

	// Label is the human-readable session name derived from UserAgent.
	Label string

	// LastActive is when the session last authenticated.
	LastActive time.Time
}

// Cursor returns the session's pagination cursor.
func (s Session) Cursor() string {
	return s.ID.String()
}

// sampleAgents are the user agents the generator draws from, covering every
// device class the classifier distinguishes.
var sampleAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36 Edg/114.0.1823.58",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Mobile Safari/537.36",
	"hydrogen/0.2.0",
}

// Generate builds n sessions with deterministic content for a given seed.
// IDs are monotonic ULIDs, so the generated list is already in cursor order,
// oldest first.
func Generate(n int, seed int64) []Session {
	rng := rand.New(rand.NewSource(seed))
	entropy := ulid.Monotonic(rng, 0)

	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	sessions := make([]Session, 0, n)
	for i := range n {
		created := base.Add(time.Duration(i) * 7 * time.Minute)
		ua := sampleAgents[rng.Intn(len(sampleAgents))]
		sessions = append(sessions, Session{
			ID:         ulid.MustNew(ulid.Timestamp(created), entropy),
			UserAgent:  ua,
			Device:     useragent.Classify(ua),
			Label:      useragent.Label(ua),
			LastActive: created.Add(time.Duration(rng.Intn(120)) * time.Minute),
		})
	}
	return sessions
}
