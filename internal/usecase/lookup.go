package usecase

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/registry"
)

const countsCacheKey = "lookup-counts"

// LookupUsecase is the one CRUD flow every lookup kind goes through.
// Listing is a read-through cache; every mutation validates, persists,
// invalidates the cached list and counts, then broadcasts the change.
type LookupUsecase struct {
	repo   LookupRepository
	lists  *ListStore
	counts *gocache.Cache
	signal Publisher
}

func NewLookupUsecase(repo LookupRepository, lists *ListStore, signal Publisher) *LookupUsecase {
	return &LookupUsecase{
		repo:   repo,
		lists:  lists,
		counts: gocache.New(5*time.Minute, 10*time.Minute),
		signal: signal,
	}
}

func (uc *LookupUsecase) List(ctx context.Context, kind registry.EntityKind) ([]domain.LookupRecord, error) {
	return fetchList(ctx, uc.lists, kind.Key, func(ctx context.Context) ([]domain.LookupRecord, error) {
		return uc.repo.List(ctx, kind)
	})
}

func (uc *LookupUsecase) Create(ctx context.Context, kind registry.EntityKind, name string) (domain.LookupRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LookupRecord{}, domain.ValidationError{Field: kind.APIField}
	}

	rec, err := uc.repo.Create(ctx, kind, name)
	if err != nil {
		return domain.LookupRecord{}, err
	}

	uc.changed(ctx, kind, voyagecms.OpCreate, rec.ID)
	return rec, nil
}

func (uc *LookupUsecase) Update(ctx context.Context, kind registry.EntityKind, id int64, name string) (domain.LookupRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LookupRecord{}, domain.ValidationError{Field: kind.APIField}
	}

	rec, err := uc.repo.Update(ctx, kind, id, name)
	if err != nil {
		return domain.LookupRecord{}, err
	}

	uc.changed(ctx, kind, voyagecms.OpUpdate, id)
	return rec, nil
}

func (uc *LookupUsecase) Delete(ctx context.Context, kind registry.EntityKind, id int64) error {
	err := uc.repo.Delete(ctx, kind, id)
	if err != nil {
		return err
	}

	uc.changed(ctx, kind, voyagecms.OpDelete, id)
	return nil
}

// Counts returns per-kind row counts for the lookup-tables overview,
// cached in-process.
func (uc *LookupUsecase) Counts(ctx context.Context) (domain.LookupCounts, error) {
	if cached, ok := uc.counts.Get(countsCacheKey); ok {
		return cached.(domain.LookupCounts), nil
	}

	counts, err := uc.repo.Counts(ctx, registry.All())
	if err != nil {
		return nil, err
	}

	uc.counts.Set(countsCacheKey, counts, gocache.DefaultExpiration)
	return counts, nil
}

func (uc *LookupUsecase) changed(ctx context.Context, kind registry.EntityKind, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, kind.Key)
	uc.counts.Delete(countsCacheKey)
	// broadcast is best-effort: a lost event only delays a refetch
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: kind.Key, Op: op, ID: id})
}
