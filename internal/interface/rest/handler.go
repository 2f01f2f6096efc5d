package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zeebo/xxh3"

	"github.com/voyagehq/voyagecms/internal/domain"
	"github.com/voyagehq/voyagecms/internal/present/rest/middleware"
	"github.com/voyagehq/voyagecms/internal/present/rest/presenter"
	"github.com/voyagehq/voyagecms/internal/registry"
	"github.com/voyagehq/voyagecms/internal/stream"
	"github.com/voyagehq/voyagecms/internal/usecase"
	"github.com/voyagehq/voyagecms/openapi"
)

type Handler struct {
	lookup   *usecase.LookupUsecase
	trip     *usecase.TripUsecase
	event    *usecase.EventUsecase
	talent   *usecase.TalentUsecase
	theme    *usecase.PartyThemeUsecase
	faq      *usecase.FAQUsecase
	setting  *usecase.SettingUsecase
	location *usecase.LocationUsecase
	hub      *stream.Hub
}

func NewHandler(
	lookup *usecase.LookupUsecase,
	trip *usecase.TripUsecase,
	event *usecase.EventUsecase,
	talent *usecase.TalentUsecase,
	theme *usecase.PartyThemeUsecase,
	faq *usecase.FAQUsecase,
	setting *usecase.SettingUsecase,
	location *usecase.LocationUsecase,
	hub *stream.Hub,
) *Handler {
	return &Handler{
		lookup:   lookup,
		trip:     trip,
		event:    event,
		talent:   talent,
		theme:    theme,
		faq:      faq,
		setting:  setting,
		location: location,
		hub:      hub,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// one route set per registered lookup kind
	for _, kind := range registry.All() {
		kind := kind
		base := "/api/" + kind.Key
		e.GET(base, h.handleLookupList(kind))
		e.POST(base, h.handleLookupCreate(kind), middleware.RequireEditor)
		e.PUT(base+"/:id", h.handleLookupUpdate(kind), middleware.RequireEditor)
		e.DELETE(base+"/:id", h.handleLookupDelete(kind), middleware.RequireEditor)
	}

	e.GET("/api/trips", h.handleTripList)
	e.POST("/api/trips", h.handleTripCreate, middleware.RequireEditor)
	e.GET("/api/trips/:id", h.handleTripGet)
	e.PUT("/api/trips/:id", h.handleTripUpdate, middleware.RequireEditor)
	e.DELETE("/api/trips/:id", h.handleTripDelete, middleware.RequireEditor)
	e.GET("/api/trips/:id/itinerary", h.handleItineraryList)
	e.PUT("/api/trips/:id/itinerary", h.handleItineraryReplace, middleware.RequireEditor)
	e.GET("/api/trips/:id/info-sections", h.handleInfoSectionList)
	e.PUT("/api/trips/:id/info-sections", h.handleInfoSectionReplace, middleware.RequireEditor)
	e.GET("/api/trips/:id/events", h.handleTripEvents)

	e.GET("/api/events/:id", h.handleEventGet)
	e.POST("/api/events", h.handleEventCreate, middleware.RequireEditor)
	e.PUT("/api/events/:id", h.handleEventUpdate, middleware.RequireEditor)
	e.DELETE("/api/events/:id", h.handleEventDelete, middleware.RequireEditor)

	e.GET("/api/talent", h.handleTalentList)
	e.GET("/api/talent/:id", h.handleTalentGet)
	e.POST("/api/talent", h.handleTalentCreate, middleware.RequireEditor)
	e.PUT("/api/talent/:id", h.handleTalentUpdate, middleware.RequireEditor)
	e.DELETE("/api/talent/:id", h.handleTalentDelete, middleware.RequireEditor)

	e.GET("/api/party-themes", h.handleThemeList)
	e.POST("/api/party-themes", h.handleThemeCreate, middleware.RequireEditor)
	e.PUT("/api/party-themes/:id", h.handleThemeUpdate, middleware.RequireEditor)
	e.DELETE("/api/party-themes/:id", h.handleThemeDelete, middleware.RequireEditor)

	e.GET("/api/faqs", h.handleFAQList)
	e.POST("/api/faqs", h.handleFAQCreate, middleware.RequireEditor)
	e.PUT("/api/faqs/:id", h.handleFAQUpdate, middleware.RequireEditor)
	e.DELETE("/api/faqs/:id", h.handleFAQDelete, middleware.RequireEditor)

	e.GET("/api/settings", h.handleSettingList)
	e.POST("/api/settings", h.handleSettingCreate, middleware.RequireEditor)
	e.PUT("/api/settings/:id", h.handleSettingUpdate, middleware.RequireEditor)
	e.DELETE("/api/settings/:id", h.handleSettingDelete, middleware.RequireEditor)

	e.GET("/api/locations", h.handleLocationList)
	e.POST("/api/locations", h.handleLocationCreate, middleware.RequireEditor)
	e.PUT("/api/locations/:id", h.handleLocationUpdate, middleware.RequireEditor)
	e.DELETE("/api/locations/:id", h.handleLocationDelete, middleware.RequireEditor)

	e.GET("/api/admin/lookup-tables/counts", h.handleLookupCounts, middleware.RequireEditor)
	e.GET("/api/admin/stream", h.hub.Handle, middleware.RequireEditor)

	e.GET("/openapi.json", h.handleOpenAPI)
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// listJSON writes a collection response with a content-derived ETag so the
// dashboard can revalidate cheaply between change events.
func listJSON(c echo.Context, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	etag := fmt.Sprintf(`"%x"`, xxh3.Hash(data))
	if c.Request().Header.Get("If-None-Match") == etag {
		c.Response().Header().Set("ETag", etag)
		return c.NoContent(http.StatusNotModified)
	}
	c.Response().Header().Set("ETag", etag)
	return c.JSONBlob(http.StatusOK, data)
}

func (h *Handler) handleLookupList(kind registry.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := h.lookup.List(c.Request().Context(), kind)
		if err != nil {
			return presenter.Error(c, err)
		}
		return listJSON(c, rows)
	}
}

func (h *Handler) handleLookupCreate(kind registry.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body map[string]any
		if err := c.Bind(&body); err != nil {
			return presenter.BadRequest(c, err)
		}
		name, _ := body[kind.APIField].(string)

		rec, err := h.lookup.Create(c.Request().Context(), kind, name)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.Created(c, rec)
	}
}

func (h *Handler) handleLookupUpdate(kind registry.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		var body map[string]any
		if err := c.Bind(&body); err != nil {
			return presenter.BadRequest(c, err)
		}
		name, _ := body[kind.APIField].(string)

		rec, err := h.lookup.Update(c.Request().Context(), kind, id, name)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, rec)
	}
}

func (h *Handler) handleLookupDelete(kind registry.EntityKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		if err := h.lookup.Delete(c.Request().Context(), kind, id); err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, echo.Map{"status": "ok"})
	}
}

func (h *Handler) handleLookupCounts(c echo.Context) error {
	counts, err := h.lookup.Counts(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, counts)
}

func (h *Handler) handleTripList(c echo.Context) error {
	trips, err := h.trip.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, trips)
}

// handleTripGet accepts a numeric id from the dashboard or a slug from the
// public guide pages.
func (h *Handler) handleTripGet(c echo.Context) error {
	ctx := c.Request().Context()
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		trip, err := h.trip.Get(ctx, id)
		if err != nil {
			return presenter.Error(c, err)
		}
		return presenter.OK(c, trip)
	}
	trip, err := h.trip.GetBySlug(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, trip)
}

func (h *Handler) handleTripCreate(c echo.Context) error {
	var trip domain.Trip
	if err := c.Bind(&trip); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.trip.Create(c.Request().Context(), trip)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleTripUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var trip domain.Trip
	if err := c.Bind(&trip); err != nil {
		return presenter.BadRequest(c, err)
	}
	trip.ID = id
	updated, err := h.trip.Update(c.Request().Context(), trip)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleTripDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.trip.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleItineraryList(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	stops, err := h.trip.ListItinerary(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, stops)
}

func (h *Handler) handleItineraryReplace(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var stops []domain.ItineraryStop
	if err := c.Bind(&stops); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.trip.ReplaceItinerary(c.Request().Context(), id, stops); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleInfoSectionList(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	sections, err := h.trip.ListInfoSections(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, sections)
}

func (h *Handler) handleInfoSectionReplace(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var sections []domain.InfoSection
	if err := c.Bind(&sections); err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.trip.ReplaceInfoSections(c.Request().Context(), id, sections); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleTripEvents(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	events, err := h.event.ListByTrip(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, events)
}

func (h *Handler) handleEventGet(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	event, err := h.event.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, event)
}

func (h *Handler) handleEventCreate(c echo.Context) error {
	var event domain.Event
	if err := c.Bind(&event); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.event.Create(c.Request().Context(), event)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleEventUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var event domain.Event
	if err := c.Bind(&event); err != nil {
		return presenter.BadRequest(c, err)
	}
	event.ID = id
	updated, err := h.event.Update(c.Request().Context(), event)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleEventDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.event.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleTalentList(c echo.Context) error {
	talent, err := h.talent.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, talent)
}

func (h *Handler) handleTalentGet(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	talent, err := h.talent.Get(c.Request().Context(), id)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, talent)
}

func (h *Handler) handleTalentCreate(c echo.Context) error {
	var talent domain.Talent
	if err := c.Bind(&talent); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.talent.Create(c.Request().Context(), talent)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleTalentUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var talent domain.Talent
	if err := c.Bind(&talent); err != nil {
		return presenter.BadRequest(c, err)
	}
	talent.ID = id
	updated, err := h.talent.Update(c.Request().Context(), talent)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleTalentDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.talent.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleThemeList(c echo.Context) error {
	themes, err := h.theme.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, themes)
}

func (h *Handler) handleThemeCreate(c echo.Context) error {
	var theme domain.PartyTheme
	if err := c.Bind(&theme); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.theme.Create(c.Request().Context(), theme)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleThemeUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var theme domain.PartyTheme
	if err := c.Bind(&theme); err != nil {
		return presenter.BadRequest(c, err)
	}
	theme.ID = id
	updated, err := h.theme.Update(c.Request().Context(), theme)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleThemeDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.theme.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleFAQList(c echo.Context) error {
	faqs, err := h.faq.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, faqs)
}

func (h *Handler) handleFAQCreate(c echo.Context) error {
	var faq domain.FAQ
	if err := c.Bind(&faq); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.faq.Create(c.Request().Context(), faq)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleFAQUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var faq domain.FAQ
	if err := c.Bind(&faq); err != nil {
		return presenter.BadRequest(c, err)
	}
	faq.ID = id
	updated, err := h.faq.Update(c.Request().Context(), faq)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleFAQDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.faq.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleSettingList(c echo.Context) error {
	settings, err := h.setting.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, settings)
}

func (h *Handler) handleSettingCreate(c echo.Context) error {
	var setting domain.Setting
	if err := c.Bind(&setting); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.setting.Create(c.Request().Context(), setting)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleSettingUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var setting domain.Setting
	if err := c.Bind(&setting); err != nil {
		return presenter.BadRequest(c, err)
	}
	setting.ID = id
	updated, err := h.setting.Update(c.Request().Context(), setting)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleSettingDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.setting.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleLocationList(c echo.Context) error {
	locations, err := h.location.List(c.Request().Context())
	if err != nil {
		return presenter.Error(c, err)
	}
	return listJSON(c, locations)
}

func (h *Handler) handleLocationCreate(c echo.Context) error {
	var location domain.Location
	if err := c.Bind(&location); err != nil {
		return presenter.BadRequest(c, err)
	}
	created, err := h.location.Create(c.Request().Context(), location)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, created)
}

func (h *Handler) handleLocationUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	var location domain.Location
	if err := c.Bind(&location); err != nil {
		return presenter.BadRequest(c, err)
	}
	location.ID = id
	updated, err := h.location.Update(c.Request().Context(), location)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, updated)
}

func (h *Handler) handleLocationDelete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if err := h.location.Delete(c.Request().Context(), id); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleOpenAPI(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, openapi.Document())
}
