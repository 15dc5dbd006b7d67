package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/storage"
	"github.com/globex/wordcount/internal/worker"
)

// ErrInvalidURL is returned for URLs that cannot be parsed or use a
// scheme other than http/https.
var ErrInvalidURL = errors.New("invalid url")

// URLService orchestrates the record pipeline: duplicate check, page
// fetch, word count, persist, and the list/favorite/delete siblings.
// Deleted records are handed to a background worker for purging.
type URLService struct {
	repository Storage
	fetcher    PageFetcher
	logger     *zap.Logger
	ch         chan<- storage.URLRecord
}

func NewURL(repo Storage, fetcher PageFetcher, logger *zap.Logger) *URLService {
	purge := worker.NewPurgeWorker(logger, repo)
	in := purge.GetInChannel()

	service := URLService{
		repository: repo,
		fetcher:    fetcher,
		logger:     logger,
		ch:         in,
	}

	go purge.FlushRecords()

	return &service
}

func (s *URLService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// AddURL runs the add pipeline for one URL. The pre-check read avoids
// fetching pages the user already counted; the store's unique
// (user_id, url) constraint is what actually rules out concurrent
// duplicate inserts. Exactly one write happens on success, none on a
// duplicate or a fetch failure.
func (s *URLService) AddURL(ctx context.Context, userID string, rawURL string) (*storage.URLRecord, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidURL
	}

	_, err = s.repository.FindByUserAndURL(ctx, userID, rawURL)
	if err == nil {
		return nil, storage.ErrConflict
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger.Info(fmt.Sprintf("unable to fetch %s: %s", rawURL, err.Error()))
		return nil, err
	}

	return s.repository.WriteURL(ctx, storage.URLRecord{
		UserID:    userID,
		URL:       rawURL,
		Domain:    u.Hostname(),
		WordCount: CountWords(body),
	})
}

// ListByDomain returns one page of the user's records for a domain,
// ordered by url ascending and resuming strictly after afterURL.
func (s *URLService) ListByDomain(ctx context.Context, userID string, domain string, afterURL string, limit int) ([]storage.URLRecord, error) {
	return s.repository.ListByDomain(ctx, userID, domain, afterURL, limit)
}

// Domains returns the user's distinct domains.
func (s *URLService) Domains(ctx context.Context, userID string, limit int) ([]string, error) {
	return s.repository.Domains(ctx, userID, limit)
}

// SetFavorite flips the favorite flag on the user's own record. The
// store enforces ownership; a foreign or unknown id reports
// storage.ErrNotFound.
func (s *URLService) SetFavorite(ctx context.Context, userID string, id string, favorite bool) error {
	return s.repository.SetFavorite(ctx, userID, id, favorite)
}

// DeleteURL soft-deletes the record and queues it for purging. Deleting
// an unknown or already-deleted id succeeds.
func (s *URLService) DeleteURL(ctx context.Context, userID string, id string) error {
	if err := s.repository.MarkDeleted(ctx, userID, id); err != nil {
		return err
	}

	s.ch <- storage.URLRecord{ID: id, UserID: userID}
	return nil
}

// DomainStats returns the document count and summed word count for the
// user's live records on a domain.
func (s *URLService) DomainStats(ctx context.Context, userID string, domain string) (*storage.DomainStats, error) {
	return s.repository.DomainStats(ctx, userID, domain)
}
