package models

// TrustedClient is a client-logo entry for the home-page marquee. Filepath is
// null for records whose logo was never uploaded.
type TrustedClient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Link     string  `json:"link"`
	Filepath *string `json:"filepath"`
	Filename *string `json:"filename"`
}
