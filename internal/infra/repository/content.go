package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/infra/database/models"
)

type PartyThemeRepository struct {
	db *gorm.DB
}

func NewPartyThemeRepository(db *gorm.DB) *PartyThemeRepository {
	return &PartyThemeRepository{db: db}
}

func themeToDomain(m models.PartyTheme) domain.PartyTheme {
	return domain.PartyTheme{
		ID:               m.ID,
		Name:             m.Name,
		ShortDescription: m.ShortDescription,
		LongDescription:  m.LongDescription,
		CostumeIdeas:     m.CostumeIdeas,
		ImageURL:         m.ImageURL,
	}
}

func (r *PartyThemeRepository) List(ctx context.Context) ([]domain.PartyTheme, error) {
	var rows []models.PartyTheme
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	themes := make([]domain.PartyTheme, 0, len(rows))
	for _, row := range rows {
		themes = append(themes, themeToDomain(row))
	}
	return themes, nil
}

func (r *PartyThemeRepository) Create(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error) {
	row := models.PartyTheme{
		Name:             theme.Name,
		ShortDescription: theme.ShortDescription,
		LongDescription:  theme.LongDescription,
		CostumeIdeas:     theme.CostumeIdeas,
		ImageURL:         theme.ImageURL,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.PartyTheme{}, err
	}
	return themeToDomain(row), nil
}

func (r *PartyThemeRepository) Update(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error) {
	res := r.db.WithContext(ctx).Model(&models.PartyTheme{}).Where("id = ?", theme.ID).
		Select("Name", "ShortDescription", "LongDescription", "CostumeIdeas", "ImageURL").
		Updates(models.PartyTheme{
			Name:             theme.Name,
			ShortDescription: theme.ShortDescription,
			LongDescription:  theme.LongDescription,
			CostumeIdeas:     theme.CostumeIdeas,
			ImageURL:         theme.ImageURL,
		})
	if res.Error != nil {
		return domain.PartyTheme{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.PartyTheme{}, domain.NotFoundError{Resource: "party theme"}
	}
	return theme, nil
}

func (r *PartyThemeRepository) Delete(ctx context.Context, id int64) error {
	var used int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("party_theme_id = ?", id).
		Count(&used).Error
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ConflictError{Message: "This party theme is in use by events and cannot be deleted"}
	}
	res := r.db.WithContext(ctx).Delete(&models.PartyTheme{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "party theme"}
	}
	return nil
}

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	var rows []models.FAQ
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	faqs := make([]domain.FAQ, 0, len(rows))
	for _, row := range rows {
		faqs = append(faqs, domain.FAQ{
			ID:          row.ID,
			Question:    row.Question,
			Answer:      row.Answer,
			SectionType: row.SectionType,
		})
	}
	return faqs, nil
}

func (r *FAQRepository) Create(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	row := models.FAQ{
		Question:    faq.Question,
		Answer:      faq.Answer,
		SectionType: faq.SectionType,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.FAQ{}, err
	}
	faq.ID = row.ID
	return faq, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	res := r.db.WithContext(ctx).Model(&models.FAQ{}).Where("id = ?", faq.ID).
		Select("Question", "Answer", "SectionType").
		Updates(models.FAQ{
			Question:    faq.Question,
			Answer:      faq.Answer,
			SectionType: faq.SectionType,
		})
	if res.Error != nil {
		return domain.FAQ{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.FAQ{}, domain.NotFoundError{Resource: "FAQ"}
	}
	return faq, nil
}

func (r *FAQRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.FAQ{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "FAQ"}
	}
	return nil
}

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	var rows []models.Setting
	err := r.db.WithContext(ctx).Order("category ASC, key ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	settings := make([]domain.Setting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, domain.Setting{
			ID:       row.ID,
			Key:      row.Key,
			Label:    row.Label,
			Value:    row.Value,
			Category: row.Category,
		})
	}
	return settings, nil
}

func (r *SettingRepository) Create(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	row := models.Setting{
		Key:      setting.Key,
		Label:    setting.Label,
		Value:    setting.Value,
		Category: setting.Category,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Setting{}, err
	}
	setting.ID = row.ID
	return setting, nil
}

func (r *SettingRepository) Update(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	res := r.db.WithContext(ctx).Model(&models.Setting{}).Where("id = ?", setting.ID).
		Select("Key", "Label", "Value", "Category").
		Updates(models.Setting{
			Key:      setting.Key,
			Label:    setting.Label,
			Value:    setting.Value,
			Category: setting.Category,
		})
	if res.Error != nil {
		return domain.Setting{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Setting{}, domain.NotFoundError{Resource: "setting"}
	}
	return setting, nil
}

func (r *SettingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Setting{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "setting"}
	}
	return nil
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func locationToDomain(m models.Location) domain.Location {
	return domain.Location{
		ID:          m.ID,
		Name:        m.Name,
		Country:     m.Country,
		TypeID:      m.LocationTypeID,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	var rows []models.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	locations := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, locationToDomain(row))
	}
	return locations, nil
}

func (r *LocationRepository) Create(ctx context.Context, location domain.Location) (domain.Location, error) {
	row := models.Location{
		Name:           location.Name,
		Country:        location.Country,
		LocationTypeID: location.TypeID,
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		Description:    location.Description,
		ImageURL:       location.ImageURL,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Location{}, err
	}
	return locationToDomain(row), nil
}

func (r *LocationRepository) Update(ctx context.Context, location domain.Location) (domain.Location, error) {
	res := r.db.WithContext(ctx).Model(&models.Location{}).Where("id = ?", location.ID).
		Select("Name", "Country", "LocationTypeID", "Latitude", "Longitude", "Description", "ImageURL").
		Updates(models.Location{
			Name:           location.Name,
			Country:        location.Country,
			LocationTypeID: location.TypeID,
			Latitude:       location.Latitude,
			Longitude:      location.Longitude,
			Description:    location.Description,
			ImageURL:       location.ImageURL,
		})
	if res.Error != nil {
		return domain.Location{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Location{}, domain.NotFoundError{Resource: "location"}
	}
	return location, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	var used int64
	err := r.db.WithContext(ctx).
		Model(&models.ItineraryStop{}).
		Where("location_id = ?", id).
		Count(&used).Error
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ConflictError{Message: "This location is used by itinerary stops and cannot be deleted"}
	}
	res := r.db.WithContext(ctx).Delete(&models.Location{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "location"}
	}
	return nil
}
