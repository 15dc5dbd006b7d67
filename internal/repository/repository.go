// Package repository implements the record and user stores on Postgres
// using the pgx driver through database/sql.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/storage"
)

// InitDB opens a connection pool and bootstraps the schema. The unique
// (user_id, url) index is the authoritative duplicate guard for the add
// operation; the service's pre-check read is only an optimization.
func InitDB(dsn string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			display_name TEXT NOT NULL,
			password_hash TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS url_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			url TEXT NOT NULL,
			domain TEXT NOT NULL,
			word_count INTEGER NOT NULL CHECK (word_count >= 0),
			favorite BOOLEAN NOT NULL DEFAULT FALSE,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE UNIQUE INDEX IF NOT EXISTS url_records_user_url_live
			ON url_records (user_id, url) WHERE NOT is_deleted;`

	_, err = db.Exec(schema)
	if err != nil {
		logger.Fatal("cannot create tables", zap.Error(err))
	}

	return db
}

// Store holds the SQL handle. Connections are acquired from the pool per
// query and released on every exit path by database/sql itself.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateStore(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, which the callers translate into storage.ErrConflict.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *Store) WriteURL(ctx context.Context, v storage.URLRecord) (*storage.URLRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO url_records(user_id, url, domain, word_count, favorite)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		v.UserID, v.URL, v.Domain, v.WordCount, v.Favorite,
	)

	if err := row.Scan(&v.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrConflict
		}
		s.logger.Error("WriteURL", zap.Error(err))
		return nil, err
	}

	return &v, nil
}

func (s *Store) FindByUserAndURL(ctx context.Context, userID string, url string) (*storage.URLRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, url, domain, word_count, favorite, is_deleted
		 FROM url_records
		 WHERE user_id = $1 AND url = $2 AND NOT is_deleted;`,
		userID, url,
	)

	var r storage.URLRecord
	err := row.Scan(&r.ID, &r.UserID, &r.URL, &r.Domain, &r.WordCount, &r.Favorite, &r.IsDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// ListByDomain returns the user's live records for a domain ordered by
// url ascending. afterURL is the pagination cursor; the empty string
// starts from the beginning.
func (s *Store) ListByDomain(ctx context.Context, userID string, domain string, afterURL string, limit int) ([]storage.URLRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, url, domain, word_count, favorite, is_deleted
		 FROM url_records
		 WHERE user_id = $1 AND domain = $2 AND NOT is_deleted AND url > $3
		 ORDER BY url ASC
		 LIMIT $4;`,
		userID, domain, afterURL, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.URLRecord, 0)
	for rows.Next() {
		var r storage.URLRecord
		err = rows.Scan(&r.ID, &r.UserID, &r.URL, &r.Domain, &r.WordCount, &r.Favorite, &r.IsDeleted)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Store) Domains(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT domain FROM url_records
		 WHERE user_id = $1 AND NOT is_deleted
		 ORDER BY domain ASC
		 LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	domains := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domains, nil
}

// SetFavorite updates the favorite flag on the user's own record only.
// Zero affected rows means the record does not exist for this user.
func (s *Store) SetFavorite(ctx context.Context, userID string, id string, favorite bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE url_records SET favorite = $1
		 WHERE id = $2 AND user_id = $3 AND NOT is_deleted;`,
		favorite, id, userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// MarkDeleted soft-deletes the user's record. Deleting an unknown or
// already-deleted id is a no-op, not an error.
func (s *Store) MarkDeleted(ctx context.Context, userID string, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE url_records SET is_deleted = TRUE
		 WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	return err
}

// PurgeBatch hard-deletes soft-deleted rows collected by the purge worker.
func (s *Store) PurgeBatch(ctx context.Context, records []storage.URLRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, r := range records {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM url_records WHERE id = $1 AND is_deleted;`, r.ID)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) DomainStats(ctx context.Context, userID string, domain string) (*storage.DomainStats, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(word_count), 0)
		 FROM url_records
		 WHERE user_id = $1 AND domain = $2 AND NOT is_deleted;`,
		userID, domain,
	)

	var stats storage.DomainStats
	if err := row.Scan(&stats.Documents, &stats.Words); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *Store) PingContext(c context.Context) error {
	return s.db.PingContext(c)
}

func (s *Store) CreateUser(ctx context.Context, u storage.User) (*storage.User, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO users(email, display_name, password_hash)
		 VALUES ($1, $2, $3) RETURNING id;`,
		u.Email, u.DisplayName, u.PasswordHash,
	)

	if err := row.Scan(&u.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrConflict
		}
		s.logger.Error("CreateUser", zap.Error(err))
		return nil, err
	}

	return &u, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*storage.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, display_name, password_hash FROM users WHERE email = $1;`,
		email,
	)

	var u storage.User
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*storage.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, display_name, password_hash FROM users WHERE id = $1;`,
		id,
	)

	var u storage.User
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
