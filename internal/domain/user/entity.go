package user

import (
	"errors"
	"strings"

	"lendit/internal/pkg/patch"
)

var ErrEmptyName = errors.New("user name must not be blank")

type User struct {
	id    int64
	name  string
	email Email
}

func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		name:  name,
		email: addr,
	}, nil
}

func ReconstructUser(id int64, name, email string) *User {
	return &User{
		id:    id,
		name:  name,
		email: Email{value: email},
	}
}

// ApplyPatch overwrites only the fields present in the request.
func (u *User) ApplyPatch(name, email *string) error {
	nextName := patch.Coalesce(name, u.name)
	if strings.TrimSpace(nextName) == "" {
		return ErrEmptyName
	}
	nextEmail := u.email
	if email != nil {
		addr, err := NewEmail(*email)
		if err != nil {
			return err
		}
		nextEmail = addr
	}
	u.name = nextName
	u.email = nextEmail
	return nil
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email.Value() }
