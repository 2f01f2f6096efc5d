package models

type Event struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TripID       int64  `json:"tripID" gorm:"not null;index"`
	Trip         Trip   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Title        string `json:"title" gorm:"type:text;not null"`
	Date         string `json:"date" gorm:"type:text;not null"`
	Time         string `json:"time" gorm:"type:text"`
	Venue        string `json:"venue" gorm:"type:text"`
	VenueTypeID  *int64 `json:"venueTypeID" gorm:"index"`
	PartyThemeID *int64 `json:"partyThemeID" gorm:"index"`
	Description  string `json:"description" gorm:"type:text"`
}

type EventTalent struct {
	EventID  int64  `json:"eventID" gorm:"primaryKey"`
	Event    Event  `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	TalentID int64  `json:"talentID" gorm:"primaryKey;index"`
	Talent   Talent `json:"-" gorm:"constraint:OnDelete:RESTRICT;"`
}

func (EventTalent) TableName() string { return "event_talent" }
