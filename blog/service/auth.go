package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/denimatfire/warm-corporate-canvas/blog"
)

// DemoPassword is the built-in editor credential used when no password
// hash is configured. This mirrors the demo nature of the site; it is
// not meant to protect anything valuable.
const DemoPassword = "admin123"

// AuthService verifies the built-in editor credential.
type AuthService interface {
	// Login checks the credentials and returns the editor identity.
	// Returns blog.ErrIncorrectPassword on any mismatch; it does not
	// reveal whether the username or the password was wrong.
	Login(username, password string) (*blog.User, error)
}

// authService is the default implementation of AuthService.
type authService struct {
	admin        blog.User
	passwordHash []byte
	now          func() time.Time
}

// NewAuthService creates an AuthService around the single built-in
// admin. An empty passwordHash falls back to a hash of DemoPassword.
func NewAuthService(passwordHash string) (AuthService, error) {
	hash := []byte(passwordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		hash = generated
	}

	return &authService{
		admin: blog.User{
			ID:        "1",
			Username:  "admin",
			Role:      blog.RoleAdmin,
			CreatedAt: time.Now(),
		},
		passwordHash: hash,
		now:          time.Now,
	}, nil
}

// Login checks the credentials and returns the editor identity.
func (s *authService) Login(username, password string) (*blog.User, error) {
	if username != s.admin.Username {
		return nil, blog.ErrIncorrectPassword
	}

	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return nil, blog.ErrIncorrectPassword
	}
	if err != nil {
		return nil, err
	}

	user := s.admin
	last := s.now()
	user.LastLogin = &last
	return &user, nil
}
