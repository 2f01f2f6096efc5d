package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/voyagehq/voyagecms"
	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/registry"
	"github.com/voyagehq/voyagecms/internal/stream"
	"github.com/voyagehq/voyagecms/internal/usecase"
)

// --- mocks ---

type mockLookupRepo struct {
	rows   map[string][]domain.LookupRecord
	nextID int64
}

func newMockLookupRepo() *mockLookupRepo {
	return &mockLookupRepo{rows: map[string][]domain.LookupRecord{}, nextID: 1}
}

func (m *mockLookupRepo) List(ctx context.Context, kind registry.EntityKind) ([]domain.LookupRecord, error) {
	return m.rows[kind.Key], nil
}

func (m *mockLookupRepo) Create(ctx context.Context, kind registry.EntityKind, name string) (domain.LookupRecord, error) {
	rec := domain.LookupRecord{ID: m.nextID, Name: name}
	m.nextID++
	m.rows[kind.Key] = append(m.rows[kind.Key], rec)
	return rec, nil
}

func (m *mockLookupRepo) Update(ctx context.Context, kind registry.EntityKind, id int64, name string) (domain.LookupRecord, error) {
	for i, rec := range m.rows[kind.Key] {
		if rec.ID == id {
			m.rows[kind.Key][i].Name = name
			return m.rows[kind.Key][i], nil
		}
	}
	return domain.LookupRecord{}, domain.NotFoundError{Resource: kind.Key}
}

func (m *mockLookupRepo) Delete(ctx context.Context, kind registry.EntityKind, id int64) error {
	// id 99 simulates a row still referenced by dependents
	if id == 99 && kind.Dependent != nil {
		return domain.ConflictError{Message: kind.Dependent.Message}
	}
	for i, rec := range m.rows[kind.Key] {
		if rec.ID == id {
			m.rows[kind.Key] = append(m.rows[kind.Key][:i], m.rows[kind.Key][i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: kind.Key}
}

func (m *mockLookupRepo) Counts(ctx context.Context, kinds []registry.EntityKind) (domain.LookupCounts, error) {
	counts := domain.LookupCounts{}
	for _, kind := range kinds {
		counts[kind.Key] = int64(len(m.rows[kind.Key]))
	}
	return counts, nil
}

type mockFAQRepo struct {
	faqs   []domain.FAQ
	nextID int64
}

func (m *mockFAQRepo) List(ctx context.Context) ([]domain.FAQ, error) { return m.faqs, nil }

func (m *mockFAQRepo) Create(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	m.nextID++
	faq.ID = m.nextID
	m.faqs = append(m.faqs, faq)
	return faq, nil
}

func (m *mockFAQRepo) Update(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	return faq, nil
}

func (m *mockFAQRepo) Delete(ctx context.Context, id int64) error { return nil }

type memoryListCache struct {
	entries map[string][]byte
}

func newMemoryListCache() *memoryListCache {
	return &memoryListCache{entries: map[string][]byte{}}
}

func (c *memoryListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *memoryListCache) Set(ctx context.Context, key string, value []byte) {
	c.entries[key] = value
}

func (c *memoryListCache) Invalidate(ctx context.Context, key string) {
	delete(c.entries, key)
}

type mockPublisher struct{}

func (m *mockPublisher) Publish(ctx context.Context, event voyagecms.ChangeEvent) error { return nil }

// --- helpers ---

func newTestServer(lookupRepo usecase.LookupRepository, faqRepo usecase.FAQRepository) *echo.Echo {
	lists := usecase.NewListStore(newMemoryListCache())
	signal := &mockPublisher{}

	h := NewHandler(
		usecase.NewLookupUsecase(lookupRepo, lists, signal),
		usecase.NewTripUsecase(nil, lists, signal),
		usecase.NewEventUsecase(nil, signal),
		usecase.NewTalentUsecase(nil, lists, signal),
		usecase.NewPartyThemeUsecase(nil, lists, signal),
		usecase.NewFAQUsecase(faqRepo, lists, signal),
		usecase.NewSettingUsecase(nil, lists, signal),
		usecase.NewLocationUsecase(nil, lists, signal),
		stream.NewHub(),
	)

	e := echo.New()
	e.Use(asEditor)
	h.RegisterRoutes(e)
	return e
}

// asEditor stamps every request with an authenticated editor identity.
func asEditor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, "editor-1")
		ctx = context.WithValue(ctx, domain.RequesterRoleCtxKey, domain.RoleEditor)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func doJSON(e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	return res
}

// --- tests ---

func TestLookupCreateAndList(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodPost, "/api/venue-types", map[string]string{"name": "Pool Deck"})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}

	var created domain.LookupRecord
	if err := json.Unmarshal(res.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == 0 || created.Name != "Pool Deck" {
		t.Fatalf("unexpected record %+v", created)
	}

	res = doJSON(e, http.MethodGet, "/api/venue-types", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	var rows []domain.LookupRecord
	if err := json.Unmarshal(res.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Pool Deck" {
		t.Fatalf("unexpected list %+v", rows)
	}
}

func TestLookupCreateRejectsBlankName(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodPost, "/api/venue-types", map[string]string{"name": "   "})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}
}

func TestLookupDeleteConflict(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodDelete, "/api/venue-types/99", nil)
	if res.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", res.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	want := "This venue type is used by events and cannot be deleted"
	if body.Error != want {
		t.Fatalf("expected %q got %q", want, body.Error)
	}
}

func TestMutationRequiresAuthentication(t *testing.T) {
	lists := usecase.NewListStore(newMemoryListCache())
	signal := &mockPublisher{}
	h := NewHandler(
		usecase.NewLookupUsecase(newMockLookupRepo(), lists, signal),
		usecase.NewTripUsecase(nil, lists, signal),
		usecase.NewEventUsecase(nil, signal),
		usecase.NewTalentUsecase(nil, lists, signal),
		usecase.NewPartyThemeUsecase(nil, lists, signal),
		usecase.NewFAQUsecase(&mockFAQRepo{}, lists, signal),
		usecase.NewSettingUsecase(nil, lists, signal),
		usecase.NewLocationUsecase(nil, lists, signal),
		stream.NewHub(),
	)

	// no identity middleware: requests arrive anonymous
	e := echo.New()
	h.RegisterRoutes(e)

	res := doJSON(e, http.MethodPost, "/api/venue-types", map[string]string{"name": "Pool Deck"})
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.Code)
	}

	// reads stay open
	res = doJSON(e, http.MethodGet, "/api/venue-types", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
}

func TestListETagRevalidation(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodPost, "/api/venue-types", map[string]string{"name": "Main Theater"})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.Code)
	}

	res = doJSON(e, http.MethodGet, "/api/venue-types", nil)
	etag := res.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected an ETag on list responses")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/venue-types", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304 got %d", rec.Code)
	}
}

func TestFAQDefaultsSectionType(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodPost, "/api/faqs", map[string]string{"question": "Is there a dress code?"})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}

	var created domain.FAQ
	if err := json.Unmarshal(res.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.SectionType != domain.SectionGeneral {
		t.Fatalf("expected section_type %q got %q", domain.SectionGeneral, created.SectionType)
	}
}

func TestLookupCountsReflectMutations(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodGet, "/api/admin/lookup-tables/counts", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	var before domain.LookupCounts
	if err := json.Unmarshal(res.Body.Bytes(), &before); err != nil {
		t.Fatalf("failed to decode counts: %v", err)
	}
	if before["venue-types"] != 0 {
		t.Fatalf("expected zero venue-types, got %d", before["venue-types"])
	}

	doJSON(e, http.MethodPost, "/api/venue-types", map[string]string{"name": "Pool Deck"})

	res = doJSON(e, http.MethodGet, "/api/admin/lookup-tables/counts", nil)
	var after domain.LookupCounts
	if err := json.Unmarshal(res.Body.Bytes(), &after); err != nil {
		t.Fatalf("failed to decode counts: %v", err)
	}
	if after["venue-types"] != 1 {
		t.Fatalf("expected one venue-type after create, got %d", after["venue-types"])
	}
}

func TestOpenAPIDocument(t *testing.T) {
	e := newTestServer(newMockLookupRepo(), &mockFAQRepo{})

	res := doJSON(e, http.MethodGet, "/openapi.json", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}
	body := res.Body.String()
	for _, path := range []string{"/api/venue-types", "/api/trips", "/api/admin/lookup-tables/counts"} {
		if !strings.Contains(body, path) {
			t.Fatalf("document is missing %s", path)
		}
	}
}
