package models

type Organization struct {
	Handle       string  `db:"handle" json:"handle"`
	Name         string  `db:"name" json:"name"`
	Description  string  `db:"description" json:"description"`
	NumEmployees *int    `db:"num_employees" json:"num_employees"` // Nullable
	LogoURL      *string `db:"logo_url" json:"logo_url"`           // Nullable

	// Populated on single-organization lookups only.
	Jobs []Job `db:"-" json:"jobs,omitempty"`
}

// OrganizationFilter holds the recognized list-query options. Nil means the
// option was not supplied and filters nothing on that axis.
type OrganizationFilter struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}
