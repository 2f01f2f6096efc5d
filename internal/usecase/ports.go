package usecase

import (
	"context"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/registry"
)

// LookupRepository defines storage for the generic lookup tables.
type LookupRepository interface {
	List(ctx context.Context, kind registry.EntityKind) ([]domain.LookupRecord, error)
	Create(ctx context.Context, kind registry.EntityKind, name string) (domain.LookupRecord, error)
	Update(ctx context.Context, kind registry.EntityKind, id int64, name string) (domain.LookupRecord, error)
	Delete(ctx context.Context, kind registry.EntityKind, id int64) error
	Counts(ctx context.Context, kinds []registry.EntityKind) (domain.LookupCounts, error)
}

// TripRepository defines storage for trips and their owned collections.
type TripRepository interface {
	List(ctx context.Context) ([]domain.Trip, error)
	Get(ctx context.Context, id int64) (domain.Trip, error)
	GetBySlug(ctx context.Context, slug string) (domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
	ListItinerary(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error)
	ReplaceItinerary(ctx context.Context, tripID int64, stops []domain.ItineraryStop) error
	ListInfoSections(ctx context.Context, tripID int64) ([]domain.InfoSection, error)
	ReplaceInfoSections(ctx context.Context, tripID int64, sections []domain.InfoSection) error
}

// EventRepository defines storage for scheduled events.
type EventRepository interface {
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Event, error)
	Get(ctx context.Context, id int64) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

// TalentRepository defines storage for talent profiles.
type TalentRepository interface {
	List(ctx context.Context) ([]domain.Talent, error)
	Get(ctx context.Context, id int64) (domain.Talent, error)
	Create(ctx context.Context, talent domain.Talent) (domain.Talent, error)
	Update(ctx context.Context, talent domain.Talent) (domain.Talent, error)
	Delete(ctx context.Context, id int64) error
}

// PartyThemeRepository defines storage for party themes.
type PartyThemeRepository interface {
	List(ctx context.Context) ([]domain.PartyTheme, error)
	Create(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error)
	Update(ctx context.Context, theme domain.PartyTheme) (domain.PartyTheme, error)
	Delete(ctx context.Context, id int64) error
}

// FAQRepository defines storage for FAQ entries.
type FAQRepository interface {
	List(ctx context.Context) ([]domain.FAQ, error)
	Create(ctx context.Context, faq domain.FAQ) (domain.FAQ, error)
	Update(ctx context.Context, faq domain.FAQ) (domain.FAQ, error)
	Delete(ctx context.Context, id int64) error
}

// SettingRepository defines storage for settings rows.
type SettingRepository interface {
	List(ctx context.Context) ([]domain.Setting, error)
	Create(ctx context.Context, setting domain.Setting) (domain.Setting, error)
	Update(ctx context.Context, setting domain.Setting) (domain.Setting, error)
	Delete(ctx context.Context, id int64) error
}

// LocationRepository defines storage for ports/destinations.
type LocationRepository interface {
	List(ctx context.Context) ([]domain.Location, error)
	Create(ctx context.Context, location domain.Location) (domain.Location, error)
	Update(ctx context.Context, location domain.Location) (domain.Location, error)
	Delete(ctx context.Context, id int64) error
}

// ListCache is the shared cache for collection listings, keyed by
// collection. Values are JSON-encoded row slices.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, key string)
}

// Publisher broadcasts change events after successful mutations.
type Publisher interface {
	Publish(ctx context.Context, event voyagecms.ChangeEvent) error
}
