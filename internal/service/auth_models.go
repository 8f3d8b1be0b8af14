package service

type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
}

type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is the public-safe projection of a logged-in user plus the
// signed session token. The password hash never leaves the service layer.
type LoginResult struct {
	UserID    string
	FullName  string
	Email     string
	Role      string
	Token     string
	ExpiresIn int64
}
