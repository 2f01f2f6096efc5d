package usecase

import (
	"context"
	"strings"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
)

const eventsCollection = "events"

type EventUsecase struct {
	repo   EventRepository
	signal Publisher
}

func NewEventUsecase(repo EventRepository, signal Publisher) *EventUsecase {
	return &EventUsecase{repo: repo, signal: signal}
}

func (uc *EventUsecase) validate(event domain.Event) error {
	if event.TripID == 0 {
		return domain.ValidationError{Field: "trip_id"}
	}
	if strings.TrimSpace(event.Title) == "" {
		return domain.ValidationError{Field: "title"}
	}
	if _, err := voyagecms.ParseDate(event.Date); err != nil {
		return domain.ValidationError{Field: "date", Message: err.Error()}
	}
	if event.Time != "" && !voyagecms.ValidClock(event.Time) {
		return domain.ValidationError{Field: "time", Message: "time must be HH:MM"}
	}
	return nil
}

func (uc *EventUsecase) ListByTrip(ctx context.Context, tripID int64) ([]domain.Event, error) {
	return uc.repo.ListByTrip(ctx, tripID)
}

func (uc *EventUsecase) Get(ctx context.Context, id int64) (domain.Event, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *EventUsecase) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := uc.validate(event); err != nil {
		return domain.Event{}, err
	}
	created, err := uc.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}
	uc.changed(ctx, voyagecms.OpCreate, created.ID)
	return created, nil
}

func (uc *EventUsecase) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := uc.validate(event); err != nil {
		return domain.Event{}, err
	}
	updated, err := uc.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}
	uc.changed(ctx, voyagecms.OpUpdate, event.ID)
	return updated, nil
}

func (uc *EventUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, voyagecms.OpDelete, id)
	return nil
}

func (uc *EventUsecase) changed(ctx context.Context, op voyagecms.ChangeOp, id int64) {
	_ = uc.signal.Publish(ctx, voyagecms.ChangeEvent{Collection: eventsCollection, Op: op, ID: id})
}
