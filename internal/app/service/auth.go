// Package service implements the wordcount domain logic: account and
// token handling, page fetching, word counting and the URL record
// pipeline. Handlers stay thin and delegate here.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/globex/wordcount/internal/storage"
)

// ErrInvalidToken is returned for tokens that fail signature or claim
// validation, including expired ones.
var ErrInvalidToken = errors.New("invalid token")

// ErrWrongCredentials covers both an unknown account and a wrong
// password, so login failures do not reveal which one it was.
var ErrWrongCredentials = errors.New("wrong email or password")

// ErrEmailMismatch is returned by VerifyToken when the token is valid but
// belongs to a different account.
var ErrEmailMismatch = errors.New("token does not match email")

// Claims represents the claims that are included in the JWT token.
// It embeds the RegisteredClaims from the JWT package and includes
// a custom UserID field.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is a custom claim for storing the user ID.
	UserID string `json:"user_id"`
}

// TokenExp defines the expiration time of the JWT token (1 year).
const TokenExp = time.Hour * 24 * 365 // 1 year

// Auth issues and verifies bearer tokens and manages accounts. The
// signing secret is injected from configuration.
type Auth struct {
	users  UserStorage
	secret []byte
}

// NewAuth creates a new Auth instance over the given user store.
func NewAuth(users UserStorage, secret string) *Auth {
	return &Auth{
		users:  users,
		secret: []byte(secret),
	}
}

// BuildJWTString generates a signed JWT for the user id.
func (a *Auth) BuildJWTString(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})

	return token.SignedString(a.secret)
}

// ParseRawJWT validates a raw token string and returns its claims.
func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SignUp creates an account and returns a fresh token for it. An existing
// email surfaces as storage.ErrConflict.
func (a *Auth) SignUp(ctx context.Context, displayName string, email string, password string) (string, *storage.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := a.users.CreateUser(ctx, storage.User{
		Email:        strings.ToLower(email),
		DisplayName:  displayName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", nil, err
	}

	token, err := a.BuildJWTString(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// LogIn checks the password against the stored bcrypt hash and returns a
// fresh token on success.
func (a *Auth) LogIn(ctx context.Context, email string, password string) (string, *storage.User, error) {
	user, err := a.users.FindUserByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil, ErrWrongCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrWrongCredentials
	}

	token, err := a.BuildJWTString(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate validates a raw token and confirms the subject still
// resolves to an existing account, guarding against revoked users. It
// returns the verified user id.
func (a *Auth) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := a.ParseRawJWT(token)
	if err != nil {
		return "", err
	}

	if _, err := a.users.FindUserByID(ctx, claims.UserID); err != nil {
		return "", err
	}

	return claims.UserID, nil
}

// VerifyToken checks that a valid token belongs to the account with the
// given email (compared case-insensitively).
func (a *Auth) VerifyToken(ctx context.Context, token string, email string) error {
	claims, err := a.ParseRawJWT(token)
	if err != nil {
		return err
	}

	user, err := a.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if !strings.EqualFold(user.Email, email) {
		return ErrEmailMismatch
	}

	return nil
}
