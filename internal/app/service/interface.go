package service

import (
	"context"

	"github.com/globex/wordcount/internal/storage"
)

// Storage is the record store the URL service runs against. Both the
// Postgres repository and the in-memory store implement it.
type Storage interface {
	WriteURL(context.Context, storage.URLRecord) (*storage.URLRecord, error)
	FindByUserAndURL(ctx context.Context, userID string, url string) (*storage.URLRecord, error)
	ListByDomain(ctx context.Context, userID string, domain string, afterURL string, limit int) ([]storage.URLRecord, error)
	Domains(ctx context.Context, userID string, limit int) ([]string, error)
	SetFavorite(ctx context.Context, userID string, id string, favorite bool) error
	MarkDeleted(ctx context.Context, userID string, id string) error
	PurgeBatch(context.Context, []storage.URLRecord) error
	DomainStats(ctx context.Context, userID string, domain string) (*storage.DomainStats, error)
	PingContext(context.Context) error
}

// UserStorage is the account store backing signup, login and the
// middleware's existence re-check.
type UserStorage interface {
	CreateUser(context.Context, storage.User) (*storage.User, error)
	FindUserByEmail(ctx context.Context, email string) (*storage.User, error)
	FindUserByID(ctx context.Context, id string) (*storage.User, error)
}

// URLServiceIface is consumed by the HTTP handlers.
type URLServiceIface interface {
	AddURL(ctx context.Context, userID string, rawURL string) (*storage.URLRecord, error)
	ListByDomain(ctx context.Context, userID string, domain string, afterURL string, limit int) ([]storage.URLRecord, error)
	Domains(ctx context.Context, userID string, limit int) ([]string, error)
	SetFavorite(ctx context.Context, userID string, id string, favorite bool) error
	DeleteURL(ctx context.Context, userID string, id string) error
	DomainStats(ctx context.Context, userID string, domain string) (*storage.DomainStats, error)
	PingContext(ctx context.Context) error
}

// AuthIface is consumed by the auth handlers and the bearer middleware.
type AuthIface interface {
	SignUp(ctx context.Context, displayName string, email string, password string) (string, *storage.User, error)
	LogIn(ctx context.Context, email string, password string) (string, *storage.User, error)
	Authenticate(ctx context.Context, token string) (string, error)
	VerifyToken(ctx context.Context, token string, email string) error
}

// PageFetcher downloads the body of a submitted URL.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
