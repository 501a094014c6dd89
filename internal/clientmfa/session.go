// Package clientmfa implements the desktop-client MFA login flow: the
// in-memory login sessions and the orchestration between token service,
// storage and notifiers.
package clientmfa

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	devicedomain "github.com/bhardwajRahul/defguard/internal/device/domain"
	locationdomain "github.com/bhardwajRahul/defguard/internal/location/domain"
	"github.com/bhardwajRahul/defguard/internal/mfa"
	userdomain "github.com/bhardwajRahul/defguard/internal/user/domain"
)

// LoginSession is the in-flight state of one MFA login, created by start
// and consumed by finish. Location, device and user are snapshots taken at
// start time. ExpiresAt mirrors the login token's deadline.
type LoginSession struct {
	Method    mfa.Method
	Location  *locationdomain.Location
	Device    *devicedomain.Device
	User      *userdomain.User
	ExpiresAt time.Time
}

// SessionStore holds login sessions keyed by device public key. All
// mutations happen under one mutex; critical sections do no I/O so the
// lock never outlives a map operation.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*LoginSession
	nowF     func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*LoginSession),
		nowF:     func() time.Time { return time.Now().UTC() },
	}
}

// Put stores the session under pubkey, replacing any existing one. A
// second start for the same device wins over the first.
func (s *SessionStore) Put(pubkey string, session *LoginSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[pubkey] = session
}

// Get returns the live session for pubkey. Expired sessions are treated as
// absent and dropped.
func (s *SessionStore) Get(pubkey string) (*LoginSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[pubkey]
	if !ok {
		return nil, false
	}
	if !session.ExpiresAt.After(s.nowF()) {
		delete(s.sessions, pubkey)
		return nil, false
	}
	return session, true
}

// Delete removes the session for pubkey, if any. Returns whether a session
// was present; two racing finishes decide the winner here.
func (s *SessionStore) Delete(pubkey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[pubkey]
	delete(s.sessions, pubkey)
	return ok
}

// Len returns the number of resident sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ReapExpired removes all sessions whose deadline has passed and returns
// how many were evicted.
func (s *SessionStore) ReapExpired() int {
	now := s.nowF()
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for pubkey, session := range s.sessions {
		if !session.ExpiresAt.After(now) {
			delete(s.sessions, pubkey)
			evicted++
		}
	}
	return evicted
}

// RunReaper evicts expired sessions every interval until ctx is cancelled.
// Abandoned logins would otherwise stay resident forever.
func (s *SessionStore) RunReaper(ctx context.Context, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.ReapExpired(); n > 0 {
				log.Debug("clientmfa: reaped expired sessions", zap.Int("count", n))
			}
		}
	}
}
