package models

import "time"

// Lookup tables. Table names and name columns must stay in sync with the
// entity kind registry.

type VenueType struct {
	ID    int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	CDate time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type TalentCategory struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Category string    `json:"category" gorm:"type:text;not null;uniqueIndex"`
	CDate    time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

func (TalentCategory) TableName() string { return "talent_categories" }

type TripStatus struct {
	ID     int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Status string    `json:"status" gorm:"type:text;not null;uniqueIndex"`
	CDate  time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

func (TripStatus) TableName() string { return "trip_statuses" }

type LocationType struct {
	ID    int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	CDate time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type CharterCompany struct {
	ID    int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	CDate time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

func (CharterCompany) TableName() string { return "charter_companies" }
