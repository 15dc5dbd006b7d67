package storage

import "errors"

// ErrConflict is returned when a write collides with an existing record,
// e.g. a second (user, url) insert or a duplicate account email.
var ErrConflict = errors.New("data conflict")

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("not found")

// URLRecord is a counted page stored for a user. url, domain and
// word_count are immutable after creation; favorite is mutable; delete
// flips is_deleted and a background worker purges the row later.
type URLRecord struct {
	ID        string `json:"uuid"`
	UserID    string `json:"user_id"`
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	WordCount int    `json:"word_count"`
	Favorite  bool   `json:"favorite"`
	IsDeleted bool   `json:"is_deleted"`
}

// User is an account record. Email is stored lowercase and unique.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
}

// DomainStats aggregates a user's live records for one domain.
type DomainStats struct {
	Documents int
	Words     int
}
