package models

// ProjectType is a project category used to filter the public catalog.
// Status false means the type is retired and must not be shown.
type ProjectType struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status bool   `json:"status"`
}
