package usecase

import (
	"context"
	"strings"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
)

const talentCollection = "talent"

type TalentUsecase struct {
	repo   TalentRepository
	lists  *ListStore
	signal Publisher
}

func NewTalentUsecase(repo TalentRepository, lists *ListStore, signal Publisher) *TalentUsecase {
	return &TalentUsecase{repo: repo, lists: lists, signal: signal}
}

func (uc *TalentUsecase) List(ctx context.Context) ([]domain.Talent, error) {
	return fetchList(ctx, uc.lists, talentCollection, uc.repo.List)
}

func (uc *TalentUsecase) Get(ctx context.Context, id int64) (domain.Talent, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *TalentUsecase) Create(ctx context.Context, talent domain.Talent) (domain.Talent, error) {
	if strings.TrimSpace(talent.Name) == "" {
		return domain.Talent{}, domain.ValidationError{Field: "name"}
	}
	created, err := uc.repo.Create(ctx, talent)
	if err != nil {
		return domain.Talent{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *TalentUsecase) Update(ctx context.Context, talent domain.Talent) (domain.Talent, error) {
	if strings.TrimSpace(talent.Name) == "" {
		return domain.Talent{}, domain.ValidationError{Field: "name"}
	}
	updated, err := uc.repo.Update(ctx, talent)
	if err != nil {
		return domain.Talent{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, talent.ID)
	return updated, nil
}

// Delete refuses to remove talent still assigned to events; the conflict
// message from the repository is passed to the dashboard verbatim.
func (uc *TalentUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *TalentUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, talentCollection)
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: talentCollection, Op: op, ID: id})
}
