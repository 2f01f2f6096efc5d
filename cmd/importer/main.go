// Command importer loads a JSON seed file into a running voyagecms
// instance through the public API, so imports get the same validation and
// cache invalidation as dashboard edits.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/voyagehq/voyagecms/client"
	"github.com/voyagehq/voyagecms/internal/domain"
)

type seedEvent struct {
	domain.Event
	VenueType  string   `json:"venue_type,omitempty"`
	PartyTheme string   `json:"party_theme,omitempty"`
	Talent     []string `json:"talent,omitempty"`
}

type seedTrip struct {
	domain.Trip
	Status       string                 `json:"status,omitempty"`
	Itinerary    []domain.ItineraryStop `json:"itinerary,omitempty"`
	InfoSections []domain.InfoSection   `json:"info_sections,omitempty"`
	Events       []seedEvent            `json:"events,omitempty"`
}

type seedTalent struct {
	domain.Talent
	Category string `json:"category,omitempty"`
}

type seedFile struct {
	Lookups     map[string][]string `json:"lookups,omitempty"`
	Locations   []domain.Location   `json:"locations,omitempty"`
	Talent      []seedTalent        `json:"talent,omitempty"`
	PartyThemes []domain.PartyTheme `json:"party_themes,omitempty"`
	Trips       []seedTrip          `json:"trips,omitempty"`
	FAQs        []domain.FAQ        `json:"faqs,omitempty"`
	Settings    []domain.Setting    `json:"settings,omitempty"`
}

func main() {
	seedPath := flag.String("f", "seed.json", "path to seed file")
	baseURL := flag.String("url", "http://localhost:8000", "API base URL")
	token := flag.String("token", "", "bearer token with editor role")
	flag.Parse()

	runID := uuid.NewString()
	log.Printf("import run %s: reading %s", runID, *seedPath)

	raw, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	ctx := context.Background()
	api := client.New(*baseURL, *token)

	for kind, names := range seed.Lookups {
		for _, name := range names {
			if _, err := api.EnsureLookup(ctx, kind, name); err != nil {
				log.Fatalf("failed to ensure %s %q: %v", kind, name, err)
			}
		}
	}

	for _, location := range seed.Locations {
		if _, err := api.CreateLocation(ctx, location); err != nil {
			log.Fatalf("failed to create location %q: %v", location.Name, err)
		}
	}

	// talent names seen this run, for resolving event lineups
	talentIDs := map[string]int64{}
	existing, err := api.ListTalent(ctx)
	if err != nil {
		log.Fatalf("failed to list talent: %v", err)
	}
	for _, t := range existing {
		talentIDs[t.Name] = t.ID
	}

	for _, entry := range seed.Talent {
		talent := entry.Talent
		if entry.Category != "" {
			id, err := api.EnsureLookup(ctx, "talent-categories", entry.Category)
			if err != nil {
				log.Fatalf("failed to ensure talent category %q: %v", entry.Category, err)
			}
			talent.CategoryID = &id
		}
		created, err := api.CreateTalent(ctx, talent)
		if err != nil {
			log.Fatalf("failed to create talent %q: %v", talent.Name, err)
		}
		talentIDs[created.Name] = created.ID
	}

	themeIDs := map[string]int64{}
	for _, theme := range seed.PartyThemes {
		created, err := api.CreatePartyTheme(ctx, theme)
		if err != nil {
			log.Fatalf("failed to create party theme %q: %v", theme.Name, err)
		}
		themeIDs[created.Name] = created.ID
	}

	for _, entry := range seed.Trips {
		if err := importTrip(ctx, api, entry, talentIDs, themeIDs); err != nil {
			log.Fatalf("failed to import trip %q: %v", entry.Name, err)
		}
	}

	for _, faq := range seed.FAQs {
		if _, err := api.CreateFAQ(ctx, faq); err != nil {
			log.Fatalf("failed to create faq %q: %v", faq.Question, err)
		}
	}

	for _, setting := range seed.Settings {
		if _, err := api.CreateSetting(ctx, setting); err != nil {
			log.Fatalf("failed to create setting %q: %v", setting.Key, err)
		}
	}

	counts, err := api.LookupCounts(ctx)
	if err != nil {
		log.Fatalf("failed to fetch lookup counts: %v", err)
	}
	log.Printf("import run %s: done, lookup counts %v", runID, counts)
}

func importTrip(ctx context.Context, api *client.Client, entry seedTrip, talentIDs, themeIDs map[string]int64) error {
	trip := entry.Trip
	if entry.Status != "" {
		id, err := api.EnsureLookup(ctx, "trip-status", entry.Status)
		if err != nil {
			return err
		}
		trip.StatusID = &id
	}

	created, err := api.CreateTrip(ctx, trip)
	if err != nil {
		return err
	}
	log.Printf("created trip %q (id %d)", created.Name, created.ID)

	if len(entry.Itinerary) > 0 {
		if err := api.ReplaceItinerary(ctx, created.ID, entry.Itinerary); err != nil {
			return err
		}
	}
	if len(entry.InfoSections) > 0 {
		if err := api.ReplaceInfoSections(ctx, created.ID, entry.InfoSections); err != nil {
			return err
		}
	}

	for _, seedEv := range entry.Events {
		event := seedEv.Event
		event.TripID = created.ID
		if seedEv.VenueType != "" {
			id, err := api.EnsureLookup(ctx, "venue-types", seedEv.VenueType)
			if err != nil {
				return err
			}
			event.VenueTypeID = &id
		}
		if seedEv.PartyTheme != "" {
			if id, ok := themeIDs[seedEv.PartyTheme]; ok {
				event.PartyThemeID = &id
			} else {
				log.Printf("trip %q event %q: unknown party theme %q, skipping reference", created.Name, event.Title, seedEv.PartyTheme)
			}
		}
		for _, name := range seedEv.Talent {
			id, ok := talentIDs[name]
			if !ok {
				log.Printf("trip %q event %q: unknown talent %q, skipping reference", created.Name, event.Title, name)
				continue
			}
			event.TalentIDs = append(event.TalentIDs, id)
		}
		if _, err := api.CreateEvent(ctx, event); err != nil {
			return err
		}
	}

	return nil
}
