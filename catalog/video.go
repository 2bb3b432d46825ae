package catalog

import (
	"fmt"
	"regexp"

	"github.com/ndnb/architecture-web-gateway/models"
)

// youtubeIDPattern matches the video id in the URL shapes editors paste into
// the back office: canonical watch URLs, youtu.be short links, and embed URLs.
var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|embed/|watch\?v=|&v=)([^#&?/]*)`)

const youtubeIDLength = 11

// YouTubeID extracts the video identifier from a YouTube URL. The second
// return value is false when no identifier can be found.
func YouTubeID(url string) (string, bool) {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[1]) != youtubeIDLength {
		return "", false
	}
	return match[1], true
}

// VideoLink is a display-ready video entry. EmbedURL and ThumbnailURL are
// empty when the source URL is not a recognizable YouTube link; such entries
// are still listed, rendered as non-playable, so counts stay consistent with
// what the API reported.
type VideoLink struct {
	ID           int64  `json:"id"`
	SourceURL    string `json:"sourceUrl"`
	EmbedURL     string `json:"embedUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// NewVideoLink derives the embeddable player URL and thumbnail for a video.
func NewVideoLink(video models.Video) VideoLink {
	link := VideoLink{ID: video.ID, SourceURL: video.VideoURL}

	if id, ok := YouTubeID(video.VideoURL); ok {
		link.EmbedURL = fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&rel=0", id)
		link.ThumbnailURL = fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
	}
	return link
}

// VideoLinks maps a project's videos to display entries, dropping none.
func VideoLinks(videos []models.Video) []VideoLink {
	links := make([]VideoLink, 0, len(videos))
	for _, video := range videos {
		links = append(links, NewVideoLink(video))
	}
	return links
}
