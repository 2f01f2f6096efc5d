package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/infra/database/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func eventToDomain(m models.Event, talentIDs []int64) domain.Event {
	return domain.Event{
		ID:           m.ID,
		TripID:       m.TripID,
		Title:        m.Title,
		Date:         m.Date,
		Time:         m.Time,
		Venue:        m.Venue,
		VenueTypeID:  m.VenueTypeID,
		PartyThemeID: m.PartyThemeID,
		TalentIDs:    talentIDs,
		Description:  m.Description,
	}
}

func (r *EventRepository) talentIDs(ctx context.Context, db *gorm.DB, eventID int64) ([]int64, error) {
	var ids []int64
	err := db.WithContext(ctx).
		Table("event_talent").
		Where("event_id = ?", eventID).
		Order("talent_id ASC").
		Pluck("talent_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (r *EventRepository) ListByTrip(ctx context.Context, tripID int64) ([]domain.Event, error) {
	var rows []models.Event
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("date ASC, time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		ids, err := r.talentIDs(ctx, r.db, row.ID)
		if err != nil {
			return nil, err
		}
		events = append(events, eventToDomain(row, ids))
	}
	return events, nil
}

func (r *EventRepository) Get(ctx context.Context, id int64) (domain.Event, error) {
	var row models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Event{}, domain.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return domain.Event{}, err
	}
	ids, err := r.talentIDs(ctx, r.db, row.ID)
	if err != nil {
		return domain.Event{}, err
	}
	return eventToDomain(row, ids), nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	row := models.Event{
		TripID:       event.TripID,
		Title:        event.Title,
		Date:         event.Date,
		Time:         event.Time,
		Venue:        event.Venue,
		VenueTypeID:  event.VenueTypeID,
		PartyThemeID: event.PartyThemeID,
		Description:  event.Description,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, talentID := range event.TalentIDs {
			join := models.EventTalent{EventID: row.ID, TalentID: talentID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return eventToDomain(row, event.TalentIDs), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Event{}).Where("id = ?", event.ID).
			Select("Title", "Date", "Time", "Venue", "VenueTypeID", "PartyThemeID", "Description").
			Updates(models.Event{
				Title:        event.Title,
				Date:         event.Date,
				Time:         event.Time,
				Venue:        event.Venue,
				VenueTypeID:  event.VenueTypeID,
				PartyThemeID: event.PartyThemeID,
				Description:  event.Description,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "event"}
		}
		if err := tx.Delete(&models.EventTalent{}, "event_id = ?", event.ID).Error; err != nil {
			return err
		}
		for _, talentID := range event.TalentIDs {
			join := models.EventTalent{EventID: event.ID, TalentID: talentID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return r.Get(ctx, event.ID)
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "event"}
	}
	return nil
}
