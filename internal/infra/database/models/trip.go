package models

import "time"

type Trip struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string    `json:"name" gorm:"type:text;not null"`
	Slug             string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	ShipName         string    `json:"shipName" gorm:"type:text"`
	CharterCompanyID *int64    `json:"charterCompanyID" gorm:"index"`
	StatusID         *int64    `json:"statusID" gorm:"index"`
	StartDate        string    `json:"startDate" gorm:"type:text;not null"`
	EndDate          string    `json:"endDate" gorm:"type:text;not null"`
	HeroImageURL     string    `json:"heroImageUrl" gorm:"type:text"`
	Description      string    `json:"description" gorm:"type:text"`
	Highlights       string    `json:"highlights" gorm:"type:jsonb;default:'[]'"`
	CDate            time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type ItineraryStop struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TripID        int64  `json:"tripID" gorm:"not null;index"`
	Trip          Trip   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Day           int    `json:"day" gorm:"not null"`
	Date          string `json:"date" gorm:"type:text;not null"`
	LocationID    *int64 `json:"locationID" gorm:"index"`
	ArrivalTime   string `json:"arrivalTime" gorm:"type:text"`
	DepartureTime string `json:"departureTime" gorm:"type:text"`
	AllAboardTime string `json:"allAboardTime" gorm:"type:text"`
	Description   string `json:"description" gorm:"type:text"`
	OrderIndex    int    `json:"orderIndex" gorm:"not null;default:0"`
}

type InfoSection struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TripID     int64  `json:"tripID" gorm:"not null;index"`
	Trip       Trip   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Title      string `json:"title" gorm:"type:text;not null"`
	Content    string `json:"content" gorm:"type:text"`
	OrderIndex int    `json:"orderIndex" gorm:"not null;default:0"`
}

type Location struct {
	ID             int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string   `json:"name" gorm:"type:text;not null"`
	Country        string   `json:"country" gorm:"type:text"`
	LocationTypeID *int64   `json:"locationTypeID" gorm:"index"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Description    string   `json:"description" gorm:"type:text"`
	ImageURL       string   `json:"imageUrl" gorm:"type:text"`
}
