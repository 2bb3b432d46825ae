package models

// ImageTypeFeature marks the media asset designated as a project's cover image.
const ImageTypeFeature = "feature"

// Media is an image attached to a project. Filepath is relative to the
// upstream static-asset root.
type Media struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	ImageType string `json:"image_type"`
	Filename  string `json:"filename"`
	Filepath  string `json:"filepath"`
	Fileurl   string `json:"fileurl,omitempty"`
}

// Video is a walkthrough video attached to a project. VideoURL is the source
// link as entered in the back office, commonly a YouTube URL.
type Video struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	VideoURL  string `json:"video_url"`
}
