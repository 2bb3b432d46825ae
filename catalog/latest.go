package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/ndnb/architecture-web-gateway/idcodec"
	"github.com/ndnb/architecture-web-gateway/models"
)

// recentProjectLimit caps the home-page "recent projects" section.
const recentProjectLimit = 6

// RecentProject is a home-page project card.
type RecentProject struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
	Token    string `json:"token"`
}

// BuildRecentProjects derives the home-page cards: published projects only,
// newest first, capped. Cards link with direct-mode tokens since they carry
// project ids, not client ids.
func BuildRecentProjects(projects []models.Project, assets AssetResolver) []RecentProject {
	published := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status {
			published = append(published, p)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return parseCreatedAt(published[i].CreatedAt).After(parseCreatedAt(published[j].CreatedAt))
	})

	if len(published) > recentProjectLimit {
		published = published[:recentProjectLimit]
	}

	cards := make([]RecentProject, 0, len(published))
	for _, p := range published {
		title := p.Name
		if title == "" {
			title = "Untitled Project"
		}

		imageURL := PlaceholderImageURL
		if len(p.Media) > 0 && p.Media[0].Filepath != "" {
			imageURL = assets.AssetURL(p.Media[0].Filepath)
		}

		cards = append(cards, RecentProject{
			ID:       p.ID,
			Title:    title,
			Date:     formatCardDate(p.CreatedAt),
			ImageURL: imageURL,
			Token:    idcodec.Encode(p.ID),
		})
	}
	return cards
}

func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatCardDate renders a creation timestamp as YYYY/MM/DD, falling back to
// the raw date portion when the timestamp is not RFC 3339.
func formatCardDate(value string) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC().Format("2006/01/02")
	}
	if len(value) >= 10 {
		return strings.ReplaceAll(value[:10], "-", "/")
	}
	return value
}
