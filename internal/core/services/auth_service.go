package services

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

const sessionTokenTTL = 24 * time.Hour

// CredentialAuthService authenticates against a fixed credential list and
// issues RS256 session tokens. The credential set is demo data; a real
// deployment would swap this for a proper identity backend without touching
// the controllers.
type CredentialAuthService struct {
	users      []domain.User
	privateKey *rsa.PrivateKey
}

var _ ports.AuthService = (*CredentialAuthService)(nil)

func NewCredentialAuthService(users []domain.User, privateKey *rsa.PrivateKey) *CredentialAuthService {
	return &CredentialAuthService{
		users:      users,
		privateKey: privateKey,
	}
}

func (s *CredentialAuthService) Login(ctx context.Context, email, password string) (*domain.AuthenticatedUser, error) {
	var user *domain.User
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(sessionTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return nil, err
	}

	redirect := "/dashboard"
	if user.Role == domain.RoleAdmin {
		redirect = "/admin"
	}

	authenticated := *user
	authenticated.Password = ""
	return &domain.AuthenticatedUser{
		User:     authenticated,
		Token:    token,
		Redirect: redirect,
	}, nil
}
