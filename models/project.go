package models

// Project represents a complete project with metadata as served by the
// upstream API.
type Project struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ProjectTypeID int64   `json:"project_type_id"`
	Location      string  `json:"location"`
	SiteArea      string  `json:"site_area"`
	Description   string  `json:"description"`
	Status        bool    `json:"status"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	Media         []Media `json:"media"`
	Videos        []Video `json:"videos"`
}

// Client links a project to the customer it was built for. One of the two
// detail-fetch paths serves projects wrapped in this indirection.
type Client struct {
	ID        int64    `json:"id"`
	ProjectID int64    `json:"project_id"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email,omitempty"`
	Mobile    string   `json:"mobile,omitempty"`
	Address   string   `json:"address,omitempty"`
	Project   *Project `json:"project"`
}
