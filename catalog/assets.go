package catalog

import "github.com/ndnb/architecture-web-gateway/models"

// PlaceholderImageURL stands in wherever a project has no usable image.
// Substituting it, rather than skipping the record, keeps list and detail
// navigation consistent and avoids phantom "no projects" states caused purely
// by missing media.
const PlaceholderImageURL = "https://via.placeholder.com/400x500?text=No+Image"

// AssetResolver turns a relative media path from the API into an absolute
// URL. *upstream.Gateway satisfies it.
type AssetResolver interface {
	AssetURL(filepath string) string
}

// featureImageURL picks a project's primary image: the media item marked as
// the feature type, else the first media item, else the placeholder.
func featureImageURL(media []models.Media, assets AssetResolver) string {
	for _, m := range media {
		if m.ImageType == models.ImageTypeFeature {
			return assets.AssetURL(m.Filepath)
		}
	}
	if len(media) > 0 {
		return assets.AssetURL(media[0].Filepath)
	}
	return PlaceholderImageURL
}
