package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/infra/database/models"
)

type TalentRepository struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) *TalentRepository {
	return &TalentRepository{db: db}
}

func talentToDomain(m models.Talent) domain.Talent {
	links := map[string]string{}
	if m.SocialLinks != "" {
		_ = json.Unmarshal([]byte(m.SocialLinks), &links)
	}
	return domain.Talent{
		ID:              m.ID,
		Name:            m.Name,
		CategoryID:      m.CategoryID,
		Bio:             m.Bio,
		KnownFor:        m.KnownFor,
		ProfileImageURL: m.ProfileImageURL,
		SocialLinks:     links,
	}
}

func talentToModel(t domain.Talent) (models.Talent, error) {
	links := t.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	serialized, err := json.Marshal(links)
	if err != nil {
		return models.Talent{}, err
	}
	return models.Talent{
		ID:              t.ID,
		Name:            t.Name,
		CategoryID:      t.CategoryID,
		Bio:             t.Bio,
		KnownFor:        t.KnownFor,
		ProfileImageURL: t.ProfileImageURL,
		SocialLinks:     string(serialized),
	}, nil
}

func (r *TalentRepository) List(ctx context.Context) ([]domain.Talent, error) {
	var rows []models.Talent
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	talent := make([]domain.Talent, 0, len(rows))
	for _, row := range rows {
		talent = append(talent, talentToDomain(row))
	}
	return talent, nil
}

func (r *TalentRepository) Get(ctx context.Context, id int64) (domain.Talent, error) {
	var row models.Talent
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Talent{}, domain.NotFoundError{Resource: "artist"}
	}
	if err != nil {
		return domain.Talent{}, err
	}
	return talentToDomain(row), nil
}

func (r *TalentRepository) Create(ctx context.Context, talent domain.Talent) (domain.Talent, error) {
	row, err := talentToModel(talent)
	if err != nil {
		return domain.Talent{}, err
	}
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Talent{}, err
	}
	return talentToDomain(row), nil
}

func (r *TalentRepository) Update(ctx context.Context, talent domain.Talent) (domain.Talent, error) {
	row, err := talentToModel(talent)
	if err != nil {
		return domain.Talent{}, err
	}
	res := r.db.WithContext(ctx).Model(&models.Talent{}).Where("id = ?", talent.ID).
		Select("Name", "CategoryID", "Bio", "KnownFor", "ProfileImageURL", "SocialLinks").
		Updates(row)
	if res.Error != nil {
		return domain.Talent{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Talent{}, domain.NotFoundError{Resource: "artist"}
	}
	return r.Get(ctx, talent.ID)
}

func (r *TalentRepository) Delete(ctx context.Context, id int64) error {
	var assigned int64
	err := r.db.WithContext(ctx).
		Table("event_talent").
		Where("talent_id = ?", id).
		Count(&assigned).Error
	if err != nil {
		return err
	}
	if assigned > 0 {
		return domain.ConflictError{Message: "This artist is assigned to events and cannot be deleted"}
	}

	res := r.db.WithContext(ctx).Delete(&models.Talent{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "artist"}
	}
	return nil
}
