package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

func NewEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if !emailRegex.MatchString(raw) {
		return "", ErrInvalidEmail
	}
	return Email(raw), nil
}

func (e Email) String() string {
	return string(e)
}

// Role distinguishes coupon holders from the businesses that validate
// their codes at the counter.
type Role string

const (
	RoleMember   Role = "member"
	RoleBusiness Role = "business"
	RoleAdmin    Role = "admin"
)

func NewRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleMember, RoleBusiness, RoleAdmin:
		return Role(raw), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
