package domain

const (
	RequesterIdCtxKey   = "vc-requesterId"
	RequesterRoleCtxKey = "vc-requesterRole"
)

// Roles carried by credentials. Viewer may read everything; editor may also
// mutate content; admin additionally manages settings.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// CanEdit reports whether a role is allowed to mutate content.
func CanEdit(role string) bool {
	return role == RoleEditor || role == RoleAdmin
}

// FAQ section types. "always" sections show on every trip guide, "general"
// only on the FAQ page, "trip-specific" only when attached to a trip.
const (
	SectionGeneral      = "general"
	SectionAlways       = "always"
	SectionTripSpecific = "trip-specific"
)

func ValidSectionType(s string) bool {
	return s == SectionGeneral || s == SectionAlways || s == SectionTripSpecific
}
