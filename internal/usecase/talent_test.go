package usecase

import (
	"context"
	"testing"

	"github.com/voyagehq/voyagecms/internal/domain"
)

type mockTalentRepo struct {
	rows     map[int64]domain.Talent
	nextID   int64
	assigned map[int64]bool // talent ids attached to events
}

func newMockTalentRepo() *mockTalentRepo {
	return &mockTalentRepo{rows: map[int64]domain.Talent{}, nextID: 1, assigned: map[int64]bool{}}
}

func (m *mockTalentRepo) List(ctx context.Context) ([]domain.Talent, error) {
	out := []domain.Talent{}
	for _, t := range m.rows {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTalentRepo) Get(ctx context.Context, id int64) (domain.Talent, error) {
	t, ok := m.rows[id]
	if !ok {
		return domain.Talent{}, domain.NotFoundError{Resource: "artist"}
	}
	return t, nil
}

func (m *mockTalentRepo) Create(ctx context.Context, t domain.Talent) (domain.Talent, error) {
	t.ID = m.nextID
	m.nextID++
	m.rows[t.ID] = t
	return t, nil
}

func (m *mockTalentRepo) Update(ctx context.Context, t domain.Talent) (domain.Talent, error) {
	if _, ok := m.rows[t.ID]; !ok {
		return domain.Talent{}, domain.NotFoundError{Resource: "artist"}
	}
	m.rows[t.ID] = t
	return t, nil
}

func (m *mockTalentRepo) Delete(ctx context.Context, id int64) error {
	if m.assigned[id] {
		return domain.ConflictError{Message: "This artist is assigned to events and cannot be deleted"}
	}
	if _, ok := m.rows[id]; !ok {
		return domain.NotFoundError{Resource: "artist"}
	}
	delete(m.rows, id)
	return nil
}

func TestTalentDeleteAssignedToEvents(t *testing.T) {
	repo := newMockTalentRepo()
	uc := NewTalentUsecase(repo, newTestLists(), &mockPublisher{})
	ctx := context.Background()

	created, err := uc.Create(ctx, domain.Talent{Name: "Monet X Change"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	repo.assigned[created.ID] = true

	err = uc.Delete(ctx, created.ID)
	if err == nil {
		t.Fatalf("expected conflict")
	}
	if err.Error() != "This artist is assigned to events and cannot be deleted" {
		t.Fatalf("conflict message must pass through verbatim, got %q", err.Error())
	}

	if _, err := uc.Get(ctx, created.ID); err != nil {
		t.Fatalf("record must survive a conflicting delete: %v", err)
	}
}

func TestTalentCreateRequiresName(t *testing.T) {
	repo := newMockTalentRepo()
	uc := NewTalentUsecase(repo, newTestLists(), &mockPublisher{})

	_, err := uc.Create(context.Background(), domain.Talent{Bio: "no name"})
	var verr domain.ValidationError
	if err == nil || !errorsAs(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("nothing may be persisted when validation fails")
	}
}

func TestTalentSocialLinksRoundTrip(t *testing.T) {
	repo := newMockTalentRepo()
	uc := NewTalentUsecase(repo, newTestLists(), &mockPublisher{})
	ctx := context.Background()

	links := map[string]string{"instagram": "https://instagram.com/monet", "cameo": "https://cameo.com/monet"}
	created, err := uc.Create(ctx, domain.Talent{Name: "Monet X Change", SocialLinks: links})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := uc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.SocialLinks["instagram"] != links["instagram"] || got.SocialLinks["cameo"] != links["cameo"] {
		t.Fatalf("social links must round-trip including unrecognized keys, got %+v", got.SocialLinks)
	}
}
