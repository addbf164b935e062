// internal/app/store/ratelimit/store.go
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Attempt tracks failed login attempts for a specific login id.
type Attempt struct {
	LoginID      string
	AttemptCount int        // failed attempts in the current window
	WindowStart  time.Time  // when the current counting window started
	LockedUntil  *time.Time // lockout expiry (nil if not locked)
	LastAttempt  time.Time
}

// Store tracks login rate limits in memory.
type Store struct {
	mu              sync.Mutex
	attempts        map[string]*Attempt
	maxAttempts     int
	windowDuration  time.Duration
	lockoutDuration time.Duration
}

// New creates a rate limit Store with the given configuration.
func New(maxAttempts int, window, lockout time.Duration) *Store {
	return &Store{
		attempts:        make(map[string]*Attempt),
		maxAttempts:     maxAttempts,
		windowDuration:  window,
		lockoutDuration: lockout,
	}
}

func normalizeLoginID(loginID string) string {
	return strings.ToLower(strings.TrimSpace(loginID))
}

// CheckAllowed checks if the given login id may attempt to sign in.
// Returns:
//   - allowed: true if the attempt should be processed
//   - remaining: attempts remaining before lockout (-1 if locked)
//   - lockedUntil: when the lockout expires (nil if not locked)
func (s *Store) CheckAllowed(loginID string) (allowed bool, remaining int, lockedUntil *time.Time) {
	loginID = normalizeLoginID(loginID)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[loginID]
	if !ok {
		return true, s.maxAttempts, nil
	}

	if attempt.LockedUntil != nil && now.Before(*attempt.LockedUntil) {
		return false, -1, attempt.LockedUntil
	}

	// Expired window means a fresh start.
	if now.After(attempt.WindowStart.Add(s.windowDuration)) {
		return true, s.maxAttempts, nil
	}

	remaining = s.maxAttempts - attempt.AttemptCount
	if remaining <= 0 {
		return false, 0, nil
	}
	return true, remaining, nil
}

// RecordFailure records a failed sign-in for the given login id.
// Returns whether this failure triggered a lockout and, if so, when
// the lockout expires.
func (s *Store) RecordFailure(loginID string) (lockedOut bool, lockedUntil *time.Time) {
	loginID = normalizeLoginID(loginID)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[loginID]
	if !ok || now.After(attempt.WindowStart.Add(s.windowDuration)) {
		attempt = &Attempt{LoginID: loginID, WindowStart: now}
		s.attempts[loginID] = attempt
	}

	attempt.AttemptCount++
	attempt.LastAttempt = now

	if attempt.AttemptCount >= s.maxAttempts {
		lockoutTime := now.Add(s.lockoutDuration)
		attempt.LockedUntil = &lockoutTime
		return true, &lockoutTime
	}
	return false, nil
}

// ClearOnSuccess removes the record for the given login id. Called
// after a successful sign-in to reset the counter.
func (s *Store) ClearOnSuccess(loginID string) {
	loginID = normalizeLoginID(loginID)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, loginID)
}

// GetAttempt returns the current attempt record for a login id, or
// nil when there is none.
func (s *Store) GetAttempt(loginID string) *Attempt {
	loginID = normalizeLoginID(loginID)

	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[loginID]
	if !ok {
		return nil
	}
	cp := *attempt
	return &cp
}
