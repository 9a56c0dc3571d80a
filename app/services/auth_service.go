package services

import (
	"errors"
	"time"

	"microblog/app/models"
	"microblog/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService registers users, verifies credentials and issues and
// validates bearer tokens
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService. Tokens are signed with
// secret and expire after tokenTTL.
func NewAuthService(userRepo repositories.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register stores a new user with a bcrypt password hash. The raw
// password is never persisted.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token. Unknown
// usernames and wrong passwords fail identically.
func (s *AuthService) Login(req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user.Username)
}

// IssueToken signs an HS256 token carrying the username as subject and
// an absolute expiry.
func (s *AuthService) IssueToken(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Authenticate validates a bearer token and resolves it to a username.
// A token is valid only while the signature checks out, the expiry has
// not passed, and the subject is still registered; every other case is
// ErrUnauthenticated.
func (s *AuthService) Authenticate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrUnauthenticated
	}

	if _, err := s.userRepo.GetByUsername(claims.Subject); err != nil {
		return "", ErrUnauthenticated
	}

	return claims.Subject, nil
}
