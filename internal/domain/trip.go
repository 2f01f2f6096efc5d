package domain

// Trip is one cruise or resort trip with a published guide.
type Trip struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	ShipName       string   `json:"ship_name,omitempty"`
	CharterCompany *int64   `json:"charter_company_id,omitempty"`
	StatusID       *int64   `json:"status_id,omitempty"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	HeroImageURL   string   `json:"hero_image_url,omitempty"`
	Description    string   `json:"description,omitempty"`
	Highlights     []string `json:"highlights,omitempty"`
}

// ItineraryStop is one ordered port call of a trip. Date is a calendar day
// and the clock fields are local port times, both stored as strings so they
// survive round trips without timezone drift.
type ItineraryStop struct {
	ID            int64  `json:"id"`
	TripID        int64  `json:"trip_id"`
	Day           int    `json:"day"`
	Date          string `json:"date"`
	LocationID    *int64 `json:"location_id,omitempty"`
	LocationName  string `json:"location_name,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	AllAboardTime string `json:"all_aboard_time,omitempty"`
	Description   string `json:"description,omitempty"`
	OrderIndex    int    `json:"order_index"`
}

// InfoSection is one ordered content block on a trip guide page.
type InfoSection struct {
	ID         int64  `json:"id"`
	TripID     int64  `json:"trip_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

// Location is a port or destination referenced by itinerary stops.
type Location struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country,omitempty"`
	TypeID      *int64   `json:"location_type_id,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}
