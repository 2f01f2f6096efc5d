package domain

// Talent is a performer or host appearing at events.
type Talent struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	CategoryID      *int64            `json:"category_id,omitempty"`
	Bio             string            `json:"bio,omitempty"`
	KnownFor        string            `json:"known_for,omitempty"`
	ProfileImageURL string            `json:"profile_image_url,omitempty"`
	SocialLinks     map[string]string `json:"social_links,omitempty"`
}
