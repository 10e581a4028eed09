package domain

// PageviewLimit is the number of single-article reads an anonymous session gets.
const PageviewLimit = 3

// Session is the server-side state attached to one client cookie.
// Nil fields are absent: PageViews stays nil until the first anonymous read,
// UserID is nil while logged out.
type Session struct {
	ID        string
	PageViews *int64
	UserID    *int64
}

// Views returns the pageview counter, treating an absent value as zero.
func (s *Session) Views() int64 {
	if s == nil || s.PageViews == nil {
		return 0
	}
	return *s.PageViews
}

// LoggedIn reports whether a user id is attached. It does not check that the user still exists.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != nil
}

// PageviewAllowed reports whether an anonymous read that brought the counter to count may be served.
func PageviewAllowed(count int64) bool {
	return count <= PageviewLimit
}
