package usecase

import (
	"context"
	"testing"

	"github.com/voyagehq/voyagecms/internal/domain"
)

type mockTripRepo struct {
	trips    map[int64]domain.Trip
	stops    map[int64][]domain.ItineraryStop
	sections map[int64][]domain.InfoSection
	nextID   int64
	listed   int
}

func newMockTripRepo() *mockTripRepo {
	return &mockTripRepo{
		trips:    map[int64]domain.Trip{},
		stops:    map[int64][]domain.ItineraryStop{},
		sections: map[int64][]domain.InfoSection{},
		nextID:   1,
	}
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	m.listed++
	out := []domain.Trip{}
	for _, t := range m.trips {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTripRepo) Get(ctx context.Context, id int64) (domain.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, nil
}

func (m *mockTripRepo) GetBySlug(ctx context.Context, slug string) (domain.Trip, error) {
	for _, t := range m.trips {
		if t.Slug == slug {
			return t, nil
		}
	}
	return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	t.ID = m.nextID
	m.nextID++
	m.trips[t.ID] = t
	return t, nil
}

func (m *mockTripRepo) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if _, ok := m.trips[t.ID]; !ok {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	m.trips[t.ID] = t
	return t, nil
}

func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.trips[id]; !ok {
		return domain.NotFoundError{Resource: "trip"}
	}
	delete(m.trips, id)
	return nil
}

func (m *mockTripRepo) ListItinerary(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error) {
	return m.stops[tripID], nil
}

func (m *mockTripRepo) ReplaceItinerary(ctx context.Context, tripID int64, stops []domain.ItineraryStop) error {
	m.stops[tripID] = stops
	return nil
}

func (m *mockTripRepo) ListInfoSections(ctx context.Context, tripID int64) ([]domain.InfoSection, error) {
	return m.sections[tripID], nil
}

func (m *mockTripRepo) ReplaceInfoSections(ctx context.Context, tripID int64, sections []domain.InfoSection) error {
	m.sections[tripID] = sections
	return nil
}

func validTrip() domain.Trip {
	return domain.Trip{
		Name:      "Caribbean Escape 2026",
		Slug:      "caribbean-escape-2026",
		StartDate: "2026-02-07",
		EndDate:   "2026-02-14",
	}
}

func TestTripCreateAndUpdate(t *testing.T) {
	repo := newMockTripRepo()
	uc := NewTripUsecase(repo, newTestLists(), &mockPublisher{})
	ctx := context.Background()

	created, err := uc.Create(ctx, validTrip())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.ShipName = "Valiant Lady"
	updated, err := uc.Update(ctx, created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ShipName != "Valiant Lady" {
		t.Fatalf("updated fields must round-trip, got %+v", updated)
	}
}

func TestTripListCachedUntilMutation(t *testing.T) {
	repo := newMockTripRepo()
	uc := NewTripUsecase(repo, newTestLists(), &mockPublisher{})
	ctx := context.Background()

	if _, err := uc.Create(ctx, validTrip()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listed != 1 {
		t.Fatalf("expected one repository read while cached, got %d", repo.listed)
	}

	second := validTrip()
	second.Slug = "halloween-at-sea-2026"
	second.Name = "Halloween at Sea 2026"
	if _, err := uc.Create(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	trips, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected both trips after invalidation, got %+v", trips)
	}
	if repo.listed != 2 {
		t.Fatalf("mutation must invalidate the cached list, reads: %d", repo.listed)
	}
}

func TestTripValidation(t *testing.T) {
	uc := NewTripUsecase(newMockTripRepo(), newTestLists(), &mockPublisher{})
	ctx := context.Background()

	cases := []struct {
		mutate func(*domain.Trip)
		field  string
	}{
		{func(tr *domain.Trip) { tr.Name = "" }, "name"},
		{func(tr *domain.Trip) { tr.Slug = "Has Spaces" }, "slug"},
		{func(tr *domain.Trip) { tr.StartDate = "02/07/2026" }, "start_date"},
		{func(tr *domain.Trip) { tr.EndDate = "2026-02-01" }, "end_date"},
	}
	for _, tc := range cases {
		trip := validTrip()
		tc.mutate(&trip)
		_, err := uc.Create(ctx, trip)
		var verr domain.ValidationError
		if err == nil || !errorsAs(err, &verr) {
			t.Fatalf("expected ValidationError for %s, got %v", tc.field, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("expected field %s, got %s", tc.field, verr.Field)
		}
	}
}

func TestReplaceItineraryValidatesTimes(t *testing.T) {
	repo := newMockTripRepo()
	uc := NewTripUsecase(repo, newTestLists(), &mockPublisher{})
	ctx := context.Background()

	trip, err := uc.Create(ctx, validTrip())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err = uc.ReplaceItinerary(ctx, trip.ID, []domain.ItineraryStop{
		{Day: 1, Date: "2026-02-07", ArrivalTime: "not-a-time"},
	})
	var verr domain.ValidationError
	if err == nil || !errorsAs(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	err = uc.ReplaceItinerary(ctx, trip.ID, []domain.ItineraryStop{
		{Day: 1, Date: "2026-02-07", ArrivalTime: "08:00", DepartureTime: "17:00", AllAboardTime: "16:30"},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	stops, err := uc.ListItinerary(ctx, trip.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stops) != 1 || stops[0].Date != "2026-02-07" {
		t.Fatalf("unexpected itinerary %+v", stops)
	}
}

func TestReplaceItineraryUnknownTrip(t *testing.T) {
	uc := NewTripUsecase(newMockTripRepo(), newTestLists(), &mockPublisher{})
	err := uc.ReplaceItinerary(context.Background(), 404, nil)
	var nferr domain.NotFoundError
	if err == nil || !errorsAs(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
