package models

type Job struct {
	ID        int64    `db:"id" json:"id"`
	Title     string   `db:"title" json:"title"`
	Salary    *int     `db:"salary" json:"salary"`  // Nullable
	Equity    *float64 `db:"equity" json:"equity"`  // Nullable, fraction in [0, 1]
	OrgHandle string   `db:"org_handle" json:"org_handle"`
}

// JobFilter holds the recognized list-query options for job postings.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}
