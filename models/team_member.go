package models

// TeamMember is a staff profile shown on the about page.
type TeamMember struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Designation    string  `json:"designation"`
	Order          int     `json:"order"`
	Email          string  `json:"email,omitempty"`
	ContactNo      string  `json:"contact_no,omitempty"`
	Filepath       *string `json:"filepath"`
	AdditionalInfo string  `json:"additionalInfo,omitempty"`
}
