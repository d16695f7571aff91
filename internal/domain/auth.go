package domain

// Credentials is the login payload sent to the marketplace API.
type Credentials struct {
	Username string
	Password string
}

// Registration is the new-account payload. Role defaults to buyer when
// unset; the API rejects anything outside {buyer, seller}.
type Registration struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Role            Role
	Country         string
	Phone           string
}

// AuthResult is what a successful login or registration yields: the identity
// record plus an opaque bearer credential pair.
type AuthResult struct {
	User              User
	AccessCredential  string
	RefreshCredential string
}
