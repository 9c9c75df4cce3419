package assistant

import (
	"testing"
	"time"
)

func TestCacheStoreCreatesOnFirstFetch(t *testing.T) {
	store := NewCacheStore(0)

	if _, ok := store.Peek("s1"); ok {
		t.Fatal("Peek created a session")
	}
	s := store.Fetch("s1")
	if s == nil {
		t.Fatal("Fetch returned nil")
	}
	again := store.Fetch("s1")
	if s != again {
		t.Error("Fetch returned a different session for the same id")
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}

func TestCacheStoreMutationsPersist(t *testing.T) {
	store := NewCacheStore(0)

	s := store.Fetch("s1")
	s.AddDislike("Milk")
	s.ReminderStep = StepAwaitingTime

	s2 := store.Fetch("s1")
	if !s2.IsDisliked("milk") {
		t.Error("dislike lost between fetches")
	}
	if s2.ReminderStep != StepAwaitingTime {
		t.Error("reminder step lost between fetches")
	}
}

func TestCacheStoreExpiresIdleSessions(t *testing.T) {
	store := NewCacheStore(20 * time.Millisecond)

	store.Fetch("s1")
	time.Sleep(60 * time.Millisecond)

	if _, ok := store.Peek("s1"); ok {
		t.Error("idle session survived its TTL")
	}
}

func TestFetchRefreshesTTL(t *testing.T) {
	store := NewCacheStore(50 * time.Millisecond)

	store.Fetch("s1")
	for i := 0; i < 4; i++ {
		time.Sleep(25 * time.Millisecond)
		store.Fetch("s1")
	}
	if _, ok := store.Peek("s1"); !ok {
		t.Error("active session expired despite refreshes")
	}
}

func TestAddDislikeNormalizes(t *testing.T) {
	s := newSession()
	s.AddDislike("  Milk ")
	s.AddDislike("MILK")
	s.AddDislike("")

	if s.DislikeCount() != 1 {
		t.Errorf("DislikeCount = %d, want 1", s.DislikeCount())
	}
	if !s.IsDisliked("Milk") {
		t.Error("IsDisliked should be case-insensitive")
	}
}
