package models

import "time"

type Talent struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string    `json:"name" gorm:"type:text;not null"`
	CategoryID      *int64    `json:"categoryID" gorm:"index"`
	Bio             string    `json:"bio" gorm:"type:text"`
	KnownFor        string    `json:"knownFor" gorm:"type:text"`
	ProfileImageURL string    `json:"profileImageUrl" gorm:"type:text"`
	SocialLinks     string    `json:"socialLinks" gorm:"type:jsonb;default:'{}'"`
	CDate           time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

func (Talent) TableName() string { return "talent" }

type PartyTheme struct {
	ID               int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string `json:"name" gorm:"type:text;not null;uniqueIndex"`
	ShortDescription string `json:"shortDescription" gorm:"type:text"`
	LongDescription  string `json:"longDescription" gorm:"type:text"`
	CostumeIdeas     string `json:"costumeIdeas" gorm:"type:text"`
	ImageURL         string `json:"imageUrl" gorm:"type:text"`
}

type FAQ struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Question    string `json:"question" gorm:"type:text;not null"`
	Answer      string `json:"answer" gorm:"type:text"`
	SectionType string `json:"sectionType" gorm:"type:text;not null;default:'general'"`
}

func (FAQ) TableName() string { return "faqs" }

type Setting struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Key      string `json:"key" gorm:"type:text;not null;uniqueIndex"`
	Label    string `json:"label" gorm:"type:text;not null"`
	Value    string `json:"value" gorm:"type:text"`
	Category string `json:"category" gorm:"type:text;index"`
}
