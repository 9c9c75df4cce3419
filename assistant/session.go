package assistant

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ReminderStep is the reminder wizard's state for a session.
type ReminderStep int

const (
	StepIdle ReminderStep = iota
	StepAwaitingType
	StepAwaitingTime
	StepAwaitingFrequency
)

// ReminderData accumulates the wizard's answers. Populated keys are always a
// prefix of {Type, Time, Frequency} matching the steps completed so far.
type ReminderData struct {
	Type      string
	Time      string
	Frequency string
}

// Session holds the per-conversation state the assistant mutates while
// computing a reply. All mutation happens synchronously inside one Reply call.
type Session struct {
	dislikes     map[string]struct{}
	ReminderStep ReminderStep
	ReminderData ReminderData
	ShownFoods   []string
}

func newSession() *Session {
	return &Session{
		dislikes: make(map[string]struct{}),
	}
}

// AddDislike records a disliked food, lowercased and deduplicated.
func (s *Session) AddDislike(item string) {
	item = strings.ToLower(strings.TrimSpace(item))
	if item == "" {
		return
	}
	s.dislikes[item] = struct{}{}
}

// Dislikes returns the number of recorded dislikes.
func (s *Session) DislikeCount() int {
	return len(s.dislikes)
}

// IsDisliked reports whether a food is on the session's dislike list.
func (s *Session) IsDisliked(food string) bool {
	_, ok := s.dislikes[strings.ToLower(food)]
	return ok
}

// SessionStore is the session lookup abstraction injected into the Assistant.
// Fetch creates the session on first reference; Peek never creates.
type SessionStore interface {
	Fetch(sessionID string) *Session
	Peek(sessionID string) (*Session, bool)
	Count() int
}

// CacheStore keeps sessions in memory with a bounded time-to-live so a
// long-running process doesn't accumulate sessions forever. Fetch refreshes
// the TTL, so active conversations never expire mid-wizard.
type CacheStore struct {
	sessions *cache.Cache
	ttl      time.Duration
}

// DefaultSessionTTL is how long an idle session survives.
const DefaultSessionTTL = 24 * time.Hour

func NewCacheStore(ttl time.Duration) *CacheStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &CacheStore{
		sessions: cache.New(ttl, 10*time.Minute),
		ttl:      ttl,
	}
}

func (cs *CacheStore) Fetch(sessionID string) *Session {
	if v, ok := cs.sessions.Get(sessionID); ok {
		s := v.(*Session)
		cs.sessions.Set(sessionID, s, cs.ttl)
		return s
	}
	s := newSession()
	cs.sessions.Set(sessionID, s, cs.ttl)
	return s
}

func (cs *CacheStore) Peek(sessionID string) (*Session, bool) {
	v, ok := cs.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

func (cs *CacheStore) Count() int {
	return cs.sessions.ItemCount()
}
