package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps records in process memory. It backs local
// development and tests; production uses the Postgres repository.
type MemoryStorage struct {
	mu    sync.RWMutex
	urls  map[string]URLRecord // keyed by record id
	users map[string]User      // keyed by user id
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		urls:  make(map[string]URLRecord),
		users: make(map[string]User),
	}, nil
}

func (m *MemoryStorage) WriteURL(ctx context.Context, record URLRecord) (*URLRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.urls {
		if r.UserID == record.UserID && r.URL == record.URL && !r.IsDeleted {
			return nil, ErrConflict
		}
	}

	record.ID = uuid.New().String()
	m.urls[record.ID] = record
	return &record, nil
}

func (m *MemoryStorage) FindByUserAndURL(ctx context.Context, userID string, url string) (*URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.urls {
		if r.UserID == userID && r.URL == url && !r.IsDeleted {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// ListByDomain returns the user's live records for a domain ordered by
// url ascending, strictly after afterURL, at most limit records.
func (m *MemoryStorage) ListByDomain(ctx context.Context, userID string, domain string, afterURL string, limit int) ([]URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]URLRecord, 0)
	for _, r := range m.urls {
		if r.UserID == userID && r.Domain == domain && !r.IsDeleted && r.URL > afterURL {
			records = append(records, r)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].URL < records[j].URL
	})

	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (m *MemoryStorage) Domains(ctx context.Context, userID string, limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	for _, r := range m.urls {
		if r.UserID == userID && !r.IsDeleted {
			seen[r.Domain] = true
		}
	}

	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	if len(domains) > limit {
		domains = domains[:limit]
	}
	return domains, nil
}

func (m *MemoryStorage) SetFavorite(ctx context.Context, userID string, id string, favorite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.urls[id]
	if !exists || r.UserID != userID || r.IsDeleted {
		return ErrNotFound
	}

	r.Favorite = favorite
	m.urls[id] = r
	return nil
}

// MarkDeleted is idempotent: an unknown id or a repeat delete is not an
// error, and a record owned by another user is left untouched.
func (m *MemoryStorage) MarkDeleted(ctx context.Context, userID string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.urls[id]
	if !exists || r.UserID != userID {
		return nil
	}

	r.IsDeleted = true
	m.urls[id] = r
	return nil
}

func (m *MemoryStorage) PurgeBatch(ctx context.Context, records []URLRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range records {
		if r, exists := m.urls[rec.ID]; exists && r.IsDeleted {
			delete(m.urls, rec.ID)
		}
	}
	return nil
}

func (m *MemoryStorage) DomainStats(ctx context.Context, userID string, domain string) (*DomainStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := DomainStats{}
	for _, r := range m.urls {
		if r.UserID == userID && r.Domain == domain && !r.IsDeleted {
			stats.Documents++
			stats.Words += r.WordCount
		}
	}
	return &stats, nil
}

func (m *MemoryStorage) PingContext(ctx context.Context) error {
	return errors.ErrUnsupported
}

func (m *MemoryStorage) CreateUser(ctx context.Context, user User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, u := range m.users {
		if u.Email == email {
			return nil, ErrConflict
		}
	}

	user.ID = uuid.New().String()
	user.Email = email
	m.users[user.ID] = user
	return &user, nil
}

func (m *MemoryStorage) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) FindUserByID(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, exists := m.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &u, nil
}
