package auth

import "github.com/kampkelly/favourite-things/internal/domain"

// AuthResult is returned by SignUp and SignIn.
type AuthResult struct {
	Token string
	User  *domain.User
}
