package domain

// Session is the authenticated-identity state held by the client for the
// current process. The refresh credential is carried for the API layer only
// and is never inspected here.
type Session struct {
	User              *User
	Credential        string
	RefreshCredential string
}

// Authenticated is derived from credential presence on every read. It is
// never stored as its own field, so the flag cannot drift from the token.
func (s Session) Authenticated() bool {
	return s.Credential != ""
}

func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}

	return s.User.Role
}

func (s Session) Empty() bool {
	return s.User == nil && s.Credential == "" && s.RefreshCredential == ""
}
