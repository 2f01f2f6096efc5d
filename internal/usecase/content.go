package usecase

import (
	"context"
	"strings"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
)

const (
	themesCollection    = "party-themes"
	faqsCollection      = "faqs"
	settingsCollection  = "settings"
	locationsCollection = "locations"
)

type PartyThemeUsecase struct {
	repo   PartyThemeRepository
	lists  *ListStore
	signal Publisher
}

func NewPartyThemeUsecase(repo PartyThemeRepository, lists *ListStore, signal Publisher) *PartyThemeUsecase {
	return &PartyThemeUsecase{repo: repo, lists: lists, signal: signal}
}

func (uc *PartyThemeUsecase) List(ctx context.Context) ([]domain.PartyTheme, error) {
	return fetchList(ctx, uc.lists, themesCollection, uc.repo.List)
}

func (uc *PartyThemeUsecase) Create(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error) {
	if strings.TrimSpace(theme.Name) == "" {
		return domain.PartyTheme{}, domain.ValidationError{Field: "name"}
	}
	created, err := uc.repo.Create(ctx, theme)
	if err != nil {
		return domain.PartyTheme{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *PartyThemeUsecase) Update(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error) {
	if strings.TrimSpace(theme.Name) == "" {
		return domain.PartyTheme{}, domain.ValidationError{Field: "name"}
	}
	updated, err := uc.repo.Update(ctx, theme)
	if err != nil {
		return domain.PartyTheme{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, theme.ID)
	return updated, nil
}

func (uc *PartyThemeUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *PartyThemeUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, themesCollection)
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: themesCollection, Op: op, ID: id})
}

type FAQUsecase struct {
	repo   FAQRepository
	lists  *ListStore
	signal Publisher
}

func NewFAQUsecase(repo FAQRepository, lists *ListStore, signal Publisher) *FAQUsecase {
	return &FAQUsecase{repo: repo, lists: lists, signal: signal}
}

func (uc *FAQUsecase) validate(faq *domain.FAQ) error {
	if strings.TrimSpace(faq.Question) == "" {
		return domain.ValidationError{Field: "question"}
	}
	if faq.SectionType == "" {
		faq.SectionType = domain.SectionGeneral
	}
	if !domain.ValidSectionType(faq.SectionType) {
		return domain.ValidationError{Field: "section_type", Message: "section_type must be general, always or trip-specific"}
	}
	return nil
}

func (uc *FAQUsecase) List(ctx context.Context) ([]domain.FAQ, error) {
	return fetchList(ctx, uc.lists, faqsCollection, uc.repo.List)
}

func (uc *FAQUsecase) Create(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	if err := uc.validate(&faq); err != nil {
		return domain.FAQ{}, err
	}
	created, err := uc.repo.Create(ctx, faq)
	if err != nil {
		return domain.FAQ{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *FAQUsecase) Update(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	if err := uc.validate(&faq); err != nil {
		return domain.FAQ{}, err
	}
	updated, err := uc.repo.Update(ctx, faq)
	if err != nil {
		return domain.FAQ{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, faq.ID)
	return updated, nil
}

func (uc *FAQUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *FAQUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, faqsCollection)
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: faqsCollection, Op: op, ID: id})
}

type SettingUsecase struct {
	repo   SettingRepository
	lists  *ListStore
	signal Publisher
}

func NewSettingUsecase(repo SettingRepository, lists *ListStore, signal Publisher) *SettingUsecase {
	return &SettingUsecase{repo: repo, lists: lists, signal: signal}
}

func (uc *SettingUsecase) validate(setting domain.Setting) error {
	if strings.TrimSpace(setting.Key) == "" {
		return domain.ValidationError{Field: "key"}
	}
	if strings.TrimSpace(setting.Label) == "" {
		return domain.ValidationError{Field: "label"}
	}
	return nil
}

func (uc *SettingUsecase) List(ctx context.Context) ([]domain.Setting, error) {
	return fetchList(ctx, uc.lists, settingsCollection, uc.repo.List)
}

func (uc *SettingUsecase) Create(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	if err := uc.validate(setting); err != nil {
		return domain.Setting{}, err
	}
	created, err := uc.repo.Create(ctx, setting)
	if err != nil {
		return domain.Setting{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *SettingUsecase) Update(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	if err := uc.validate(setting); err != nil {
		return domain.Setting{}, err
	}
	updated, err := uc.repo.Update(ctx, setting)
	if err != nil {
		return domain.Setting{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, setting.ID)
	return updated, nil
}

func (uc *SettingUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *SettingUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, settingsCollection)
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: settingsCollection, Op: op, ID: id})
}

type LocationUsecase struct {
	repo   LocationRepository
	lists  *ListStore
	signal Publisher
}

func NewLocationUsecase(repo LocationRepository, lists *ListStore, signal Publisher) *LocationUsecase {
	return &LocationUsecase{repo: repo, lists: lists, signal: signal}
}

func (uc *LocationUsecase) List(ctx context.Context) ([]domain.Location, error) {
	return fetchList(ctx, uc.lists, locationsCollection, uc.repo.List)
}

func (uc *LocationUsecase) Create(ctx context.Context, location domain.Location) (domain.Location, error) {
	if strings.TrimSpace(location.Name) == "" {
		return domain.Location{}, domain.ValidationError{Field: "name"}
	}
	created, err := uc.repo.Create(ctx, location)
	if err != nil {
		return domain.Location{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *LocationUsecase) Update(ctx context.Context, location domain.Location) (domain.Location, error) {
	if strings.TrimSpace(location.Name) == "" {
		return domain.Location{}, domain.ValidationError{Field: "name"}
	}
	updated, err := uc.repo.Update(ctx, location)
	if err != nil {
		return domain.Location{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, location.ID)
	return updated, nil
}

func (uc *LocationUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *LocationUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, locationsCollection)
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: locationsCollection, Op: op, ID: id})
}
