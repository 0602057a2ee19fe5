package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/Dosada05/tournament-draws/utils"
)

const (
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Operator, error)
	Enabled() bool
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Operator is the single configured account allowed to mutate draws.
type Operator struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

type authService struct {
	operator *Operator
}

// NewAuthService returns a service that rejects every login when operator is nil.
func NewAuthService(operator *Operator) AuthService {
	return &authService{operator: operator}
}

func (s *authService) Enabled() bool {
	return s.operator != nil && s.operator.Username != "" && s.operator.PasswordHash != ""
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Operator, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}
	if input.Username == "" || input.Password == "" {
		return nil, ErrAuthInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.operator.Username)) != 1 {
		return nil, ErrAuthInvalidCredentials
	}

	ok, err := utils.CheckPasswordHash(input.Password, s.operator.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}
	if !ok {
		return nil, ErrAuthInvalidCredentials
	}

	role := s.operator.Role
	if role == "" {
		role = RoleOrganizer
	}
	return &Operator{Username: s.operator.Username, Role: role}, nil
}
