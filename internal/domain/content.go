package domain

// PartyTheme is a recurring party concept events can reference.
type PartyTheme struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`
	CostumeIdeas     string `json:"costume_ideas,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
}

// FAQ is one question/answer pair shown on guide pages.
type FAQ struct {
	ID          int64  `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	SectionType string `json:"section_type"`
}

// Setting is one key/label/value row of site configuration.
type Setting struct {
	ID       int64  `json:"id"`
	Key      string `json:"key"`
	Label    string `json:"label"`
	Value    string `json:"value,omitempty"`
	Category string `json:"category,omitempty"`
}
