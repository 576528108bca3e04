package domain

import "time"

// SessionUser is the snapshot of a user captured at login time. It is never
// re-read from storage, so later profile edits do not retroactively change an
// active session's view.
type SessionUser struct {
	ID       string
	Email    string
	Username string
}

// Session is a server-held, time-bounded proof of a successful login,
// referenced by the client via an opaque cookie token.
type Session struct {
	Token     string
	User      SessionUser
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at time now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
