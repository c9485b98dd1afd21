package user

import (
	"regexp"
	"strings"

	"gearshare/internal/pkg/errs"
)

var (
	ErrEmptyName    = errs.New("user name must not be empty")
	ErrInvalidEmail = errs.New("invalid email address")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type User struct {
	id    int64
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	return &User{name: name, email: email}, nil
}

func ReconstructUser(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// Patch applies a partial update; nil fields are left untouched.
func (u *User) Patch(name, email *string) error {
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = strings.TrimSpace(*name)
	}
	if email != nil {
		if !emailRegex.MatchString(*email) {
			return ErrInvalidEmail
		}
		u.email = *email
	}
	return nil
}
