package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/store"
	"github.com/recipegenie/backend/internal/types"
	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// ErrUserExists is returned when registering an email that is already taken
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned when login email/password do not match
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates bearer credentials
type AuthService struct {
	users     IUserStore
	jwtSecret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(users IUserStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user with a hashed credential and returns a signed token
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *models.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", nil, ErrUserExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies the credential and returns a signed token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID.Hex())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a bearer token
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GetUserByID resolves a token's user identity from the store
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, apperrors.NewUnauthorizedError("")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
