package auth

// Identity is the authenticated caller as established by token validation.
// It carries exactly the fields the token was bound to at signup/signin.
type Identity struct {
	ID    int64
	Name  string
	Email string
}
