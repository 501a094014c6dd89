package clientmfa

import (
	"testing"
	"time"
)

func liveSession(ttl time.Duration) *LoginSession {
	return &LoginSession{ExpiresAt: time.Now().UTC().Add(ttl)}
}

func TestSessionStorePutGetDelete(t *testing.T) {
	store := NewSessionStore()
	session := liveSession(5 * time.Minute)

	store.Put("pubkey-AAA", session)
	got, ok := store.Get("pubkey-AAA")
	if !ok || got != session {
		t.Fatal("Get did not return the stored session")
	}

	if !store.Delete("pubkey-AAA") {
		t.Error("Delete returned false for a present session")
	}
	if _, ok := store.Get("pubkey-AAA"); ok {
		t.Error("session still present after Delete")
	}
	if store.Delete("pubkey-AAA") {
		t.Error("Delete returned true for an absent session")
	}
}

func TestSessionStoreLastWriteWins(t *testing.T) {
	store := NewSessionStore()
	first := liveSession(5 * time.Minute)
	second := liveSession(5 * time.Minute)

	store.Put("pubkey-AAA", first)
	store.Put("pubkey-AAA", second)

	got, ok := store.Get("pubkey-AAA")
	if !ok || got != second {
		t.Error("second Put did not replace the first session")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestSessionStoreGetExpired(t *testing.T) {
	store := NewSessionStore()
	store.Put("pubkey-AAA", liveSession(-time.Second))

	if _, ok := store.Get("pubkey-AAA"); ok {
		t.Error("Get returned an expired session")
	}
	if store.Len() != 0 {
		t.Error("expired session not dropped on Get")
	}
}

func TestReapExpired(t *testing.T) {
	store := NewSessionStore()
	store.Put("expired-1", liveSession(-time.Minute))
	store.Put("expired-2", liveSession(-time.Second))
	store.Put("live", liveSession(5*time.Minute))

	if n := store.ReapExpired(); n != 2 {
		t.Errorf("ReapExpired() = %d, want 2", n)
	}
	if _, ok := store.Get("live"); !ok {
		t.Error("reaper evicted a live session")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d after reap, want 1", store.Len())
	}
}
