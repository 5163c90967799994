package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"profile-engine/internal/domain"
	"profile-engine/internal/model"
)

// ShareRegistry persists published portfolio snapshots and resolves
// them by slug for anonymous viewing. The whole record list lives in
// one blob under KeySharedPortfolios; every mutation is a
// read-modify-write of that blob, serialized by wmu so concurrent
// publishes in this process never drop each other's records. Writers
// in other processes remain last-write-wins at the blob level.
type ShareRegistry struct {
	store   BlobStore
	baseURL string
	log     *zap.Logger

	wmu sync.Mutex

	mu     sync.Mutex
	cache  []domain.ShareRecord
	cached bool
}

func NewShareRegistry(store BlobStore, baseURL string, log *zap.Logger) *ShareRegistry {
	return &ShareRegistry{store: store, baseURL: baseURL, log: log.Named("share")}
}

// Invalidate drops the decoded-record cache. Wired to the blob watcher
// so out-of-process writes to the backing file become visible.
func (r *ShareRegistry) Invalidate() {
	r.mu.Lock()
	r.cached = false
	r.cache = nil
	r.mu.Unlock()
}

func (r *ShareRegistry) load(ctx context.Context) ([]domain.ShareRecord, error) {
	r.mu.Lock()
	if r.cached {
		out := append([]domain.ShareRecord(nil), r.cache...)
		r.mu.Unlock()
		return out, nil
	}
	r.mu.Unlock()

	b, err := r.store.Get(ctx, KeySharedPortfolios)
	if err != nil {
		return nil, fmt.Errorf("load share records: %w", err)
	}
	records := []domain.ShareRecord{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("decode share records: %w", err)
		}
	}
	// tolerate records written before theme colors existed
	for i := range records {
		records[i].Theme = records[i].Theme.WithDefaults()
	}

	r.mu.Lock()
	r.cache = append([]domain.ShareRecord(nil), records...)
	r.cached = true
	r.mu.Unlock()
	return records, nil
}

func (r *ShareRegistry) save(ctx context.Context, records []domain.ShareRecord) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, KeySharedPortfolios, b); err != nil {
		return fmt.Errorf("save share records: %w", err)
	}
	r.mu.Lock()
	r.cache = append([]domain.ShareRecord(nil), records...)
	r.cached = true
	r.mu.Unlock()
	return nil
}

// Publish snapshots the profile and theme under a slug derived from the
// full name and returns the record and its public URL. When the slug is
// already taken a numeric suffix is appended, so the first publisher of
// a name keeps the bare slug.
func (r *ShareRegistry) Publish(ctx context.Context, userID string, profile model.Profile, theme model.Theme) (domain.ShareRecord, string, error) {
	r.wmu.Lock()
	defer r.wmu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return domain.ShareRecord{}, "", err
	}

	base := domain.Slugify(profile.PersonalInfo.FullName)
	slug := domain.DisambiguateSlug(base, func(s string) bool {
		for _, rec := range records {
			if rec.Slug == s {
				return true
			}
		}
		return false
	})

	// deep copy: later edits to the live profile must not reach the
	// published snapshot
	snapshot := profile.Clone()

	now := time.Now()
	record := domain.ShareRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		PersonalInfo: profile.PersonalInfo,
		ResumeData:   snapshot,
		Theme:        theme.WithDefaults(),
		IsPublic:     true,
		Slug:         slug,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.save(ctx, append(records, record)); err != nil {
		return domain.ShareRecord{}, "", err
	}

	url := fmt.Sprintf("%s/portfolio/%s", r.baseURL, slug)
	r.log.Info("portfolio published", zap.String("slug", slug), zap.String("id", record.ID))
	return record, url, nil
}

// Resolve returns the first record with an exact slug match. A miss is
// domain.ErrNotFound, a normal outcome that callers present as a
// distinct not-found state.
func (r *ShareRegistry) Resolve(ctx context.Context, slug string) (domain.ShareRecord, error) {
	records, err := r.load(ctx)
	if err != nil {
		return domain.ShareRecord{}, err
	}
	for _, rec := range records {
		if rec.Slug == slug {
			return rec, nil
		}
	}
	return domain.ShareRecord{}, domain.ErrNotFound
}

// UpdateTheme replaces the theme of the matching record and bumps its
// updatedAt. Everything else about a published record is immutable.
func (r *ShareRegistry) UpdateTheme(ctx context.Context, recordID string, theme model.Theme) error {
	r.wmu.Lock()
	defer r.wmu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == recordID {
			records[i].Theme = theme.WithDefaults()
			records[i].UpdatedAt = time.Now()
			return r.save(ctx, records)
		}
	}
	return domain.ErrNotFound
}
