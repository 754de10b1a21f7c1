package client

// adminIdentity is the identity value that unlocks the management controllers
const adminIdentity = "admin"

// Session is the per-visit identity context. It is constructed once at
// session start and handed to every controller that needs it, instead of
// each controller reading identity state on its own.
type Session struct {
	Identity string
}

// NewSession creates a session for the given identity
func NewSession(identity string) Session {
	return Session{Identity: identity}
}

// IsAdmin reports whether this session may use the management controllers
func (s Session) IsAdmin() bool {
	return s.Identity == adminIdentity
}
