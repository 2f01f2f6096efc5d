package domain

// Event is one scheduled happening on a trip: a show, a party, a dinner.
type Event struct {
	ID           int64   `json:"id"`
	TripID       int64   `json:"trip_id"`
	Title        string  `json:"title"`
	Date         string  `json:"date"`
	Time         string  `json:"time,omitempty"`
	Venue        string  `json:"venue,omitempty"`
	VenueTypeID  *int64  `json:"venue_type_id,omitempty"`
	PartyThemeID *int64  `json:"party_theme_id,omitempty"`
	TalentIDs    []int64 `json:"talent_ids,omitempty"`
	Description  string  `json:"description,omitempty"`
}
