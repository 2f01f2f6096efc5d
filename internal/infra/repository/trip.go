package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/infra/database/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func tripToDomain(m models.Trip) domain.Trip {
	var highlights []string
	if m.Highlights != "" {
		_ = json.Unmarshal([]byte(m.Highlights), &highlights)
	}
	return domain.Trip{
		ID:             m.ID,
		Name:           m.Name,
		Slug:           m.Slug,
		ShipName:       m.ShipName,
		CharterCompany: m.CharterCompanyID,
		StatusID:       m.StatusID,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		HeroImageURL:   m.HeroImageURL,
		Description:    m.Description,
		Highlights:     highlights,
	}
}

func tripToModel(t domain.Trip) (models.Trip, error) {
	highlights := t.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	serialized, err := json.Marshal(highlights)
	if err != nil {
		return models.Trip{}, err
	}
	return models.Trip{
		ID:               t.ID,
		Name:             t.Name,
		Slug:             t.Slug,
		ShipName:         t.ShipName,
		CharterCompanyID: t.CharterCompany,
		StatusID:         t.StatusID,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		HeroImageURL:     t.HeroImageURL,
		Description:      t.Description,
		Highlights:       string(serialized),
	}, nil
}

func (r *TripRepository) List(ctx context.Context) ([]domain.Trip, error) {
	var rows []models.Trip
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	trips := make([]domain.Trip, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, tripToDomain(row))
	}
	return trips, nil
}

func (r *TripRepository) Get(ctx context.Context, id int64) (domain.Trip, error) {
	var row models.Trip
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return domain.Trip{}, err
	}
	return tripToDomain(row), nil
}

func (r *TripRepository) GetBySlug(ctx context.Context, slug string) (domain.Trip, error) {
	var row models.Trip
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return domain.Trip{}, err
	}
	return tripToDomain(row), nil
}

func (r *TripRepository) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	row, err := tripToModel(trip)
	if err != nil {
		return domain.Trip{}, err
	}
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Trip{}, err
	}
	return tripToDomain(row), nil
}

func (r *TripRepository) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	row, err := tripToModel(trip)
	if err != nil {
		return domain.Trip{}, err
	}
	res := r.db.WithContext(ctx).Model(&models.Trip{}).Where("id = ?", trip.ID).
		Select("Name", "Slug", "ShipName", "CharterCompanyID", "StatusID",
			"StartDate", "EndDate", "HeroImageURL", "Description", "Highlights").
		Updates(row)
	if res.Error != nil {
		return domain.Trip{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return r.Get(ctx, trip.ID)
}

func (r *TripRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Trip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r *TripRepository) ListItinerary(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error) {
	var rows []domain.ItineraryStop
	err := r.db.WithContext(ctx).
		Table("itinerary_stops").
		Select("itinerary_stops.*, locations.name AS location_name").
		Joins("LEFT JOIN locations ON locations.id = itinerary_stops.location_id").
		Where("itinerary_stops.trip_id = ?", tripID).
		Order("itinerary_stops.order_index ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.ItineraryStop{}
	}
	return rows, nil
}

// ReplaceItinerary swaps the whole ordered stop list of a trip in one
// transaction. The dashboard always saves the full list.
func (r *TripRepository) ReplaceItinerary(ctx context.Context, tripID int64, stops []domain.ItineraryStop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ItineraryStop{}, "trip_id = ?", tripID).Error; err != nil {
			return err
		}
		for i, stop := range stops {
			row := models.ItineraryStop{
				TripID:        tripID,
				Day:           stop.Day,
				Date:          stop.Date,
				LocationID:    stop.LocationID,
				ArrivalTime:   stop.ArrivalTime,
				DepartureTime: stop.DepartureTime,
				AllAboardTime: stop.AllAboardTime,
				Description:   stop.Description,
				OrderIndex:    i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TripRepository) ListInfoSections(ctx context.Context, tripID int64) ([]domain.InfoSection, error) {
	var rows []models.InfoSection
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("order_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	sections := make([]domain.InfoSection, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, domain.InfoSection{
			ID:         row.ID,
			TripID:     row.TripID,
			Title:      row.Title,
			Content:    row.Content,
			OrderIndex: row.OrderIndex,
		})
	}
	return sections, nil
}

func (r *TripRepository) ReplaceInfoSections(ctx context.Context, tripID int64, sections []domain.InfoSection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InfoSection{}, "trip_id = ?", tripID).Error; err != nil {
			return err
		}
		for i, section := range sections {
			row := models.InfoSection{
				TripID:     tripID,
				Title:      section.Title,
				Content:    section.Content,
				OrderIndex: i,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
