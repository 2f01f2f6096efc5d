package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
)

const tripsCollection = "trips"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type TripUsecase struct {
	repo   TripRepository
	lists  *ListStore
	signal Publisher
}

func NewTripUsecase(repo TripRepository, lists *ListStore, signal Publisher) *TripUsecase {
	return &TripUsecase{repo: repo, lists: lists, signal: signal}
}

func (uc *TripUsecase) validate(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return domain.ValidationError{Field: "name"}
	}
	if !slugPattern.MatchString(trip.Slug) {
		return domain.ValidationError{Field: "slug", Message: "slug must be lowercase words separated by hyphens"}
	}
	start, err := voyagecms.ParseDate(trip.StartDate)
	if err != nil {
		return domain.ValidationError{Field: "start_date", Message: err.Error()}
	}
	end, err := voyagecms.ParseDate(trip.EndDate)
	if err != nil {
		return domain.ValidationError{Field: "end_date", Message: err.Error()}
	}
	if end.Before(start) {
		return domain.ValidationError{Field: "end_date", Message: "end_date precedes start_date"}
	}
	return nil
}

func (uc *TripUsecase) List(ctx context.Context) ([]domain.Trip, error) {
	return fetchList(ctx, uc.lists, tripsCollection, uc.repo.List)
}

func (uc *TripUsecase) Get(ctx context.Context, id int64) (domain.Trip, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *TripUsecase) GetBySlug(ctx context.Context, slug string) (domain.Trip, error) {
	return uc.repo.GetBySlug(ctx, slug)
}

func (uc *TripUsecase) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := uc.validate(trip); err != nil {
		return domain.Trip{}, err
	}
	created, err := uc.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *TripUsecase) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := uc.validate(trip); err != nil {
		return domain.Trip{}, err
	}
	updated, err := uc.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, trip.ID)
	return updated, nil
}

func (uc *TripUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *TripUsecase) ListItinerary(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error) {
	return uc.repo.ListItinerary(ctx, tripID)
}

func (uc *TripUsecase) ReplaceItinerary(ctx context.Context, tripID int64, stops []domain.ItineraryStop) error {
	if _, err := uc.repo.Get(ctx, tripID); err != nil {
		return err
	}
	for _, stop := range stops {
		if _, err := voyagecms.ParseDate(stop.Date); err != nil {
			return domain.ValidationError{Field: "date", Message: err.Error()}
		}
		for _, clock := range []string{stop.ArrivalTime, stop.DepartureTime, stop.AllAboardTime} {
			if clock != "" && !voyagecms.ValidClock(clock) {
				return domain.ValidationError{Field: "time", Message: "times must be HH:MM"}
			}
		}
	}
	if err := uc.repo.ReplaceItinerary(ctx, tripID, stops); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpUpdate, tripID)
	return nil
}

func (uc *TripUsecase) ListInfoSections(ctx context.Context, tripID int64) ([]domain.InfoSection, error) {
	return uc.repo.ListInfoSections(ctx, tripID)
}

func (uc *TripUsecase) ReplaceInfoSections(ctx context.Context, tripID int64, sections []domain.InfoSection) error {
	if _, err := uc.repo.Get(ctx, tripID); err != nil {
		return err
	}
	for _, section := range sections {
		if strings.TrimSpace(section.Title) == "" {
			return domain.ValidationError{Field: "title"}
		}
	}
	if err := uc.repo.ReplaceInfoSections(ctx, tripID, sections); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpUpdate, tripID)
	return nil
}

func (uc *TripUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	uc.lists.Invalidate(ctx, tripsCollection)
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: tripsCollection, Op: op, ID: id})
}
