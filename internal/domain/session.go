package domain

// Session identifies the currently authenticated user. It is a projection of
// User that deliberately omits the password: only name and email ever reach
// the volatile store. At most one session exists at a time.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSession builds the session projection for a user.
func NewSession(u User) Session {
	return Session{Name: u.Name, Email: u.Email}
}
