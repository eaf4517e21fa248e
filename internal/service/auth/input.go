package auth

// LoginInput holds the presented admin credential. Blank fields are not a
// validation error: they simply fail the credential check.
type LoginInput struct {
	Username string
	Password string
}
