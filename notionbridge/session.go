package notionbridge

import "context"

// Session is the authenticated principal carried through request contexts.
// Its OwnerID doubles as the cache-key owner prefix.
type Session struct {
	OwnerID          string
	PractitionerName string
}

type sessionKey struct{}

// WithSession attaches the session to the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session attached to the context, or nil.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
