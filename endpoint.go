package scrappa

import "strings"

// Endpoint is a path fragment, relative to the base url, naming one API capability.
type Endpoint string

// Google Maps
const (
	EndpointMapsAutocomplete    Endpoint = "maps/autocomplete"
	EndpointMapsAdvancedSearch  Endpoint = "maps/advance-search"
	EndpointMapsSimpleSearch    Endpoint = "maps/simple-search"
	EndpointMapsReviews         Endpoint = "maps/reviews"
	EndpointMapsReview          Endpoint = "maps/review"
	EndpointMapsBusinessDetails Endpoint = "maps/business-details"
)

// Search, Translate, Images, YouTube
const (
	EndpointSearch       Endpoint = "search"
	EndpointTranslate    Endpoint = "google-translate"
	EndpointImages       Endpoint = "images"
	EndpointYouTubeVideo Endpoint = "youtube/video"
)

// Path returns the endpoint without leading slashes.
func (e Endpoint) Path() string {
	return strings.TrimLeft(string(e), "/")
}

func (e Endpoint) String() string { return string(e) }

// Endpoints lists the endpoints that have a dedicated client method.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointMapsAutocomplete,
		EndpointMapsAdvancedSearch,
		EndpointMapsReviews,
		EndpointMapsBusinessDetails,
		EndpointSearch,
		EndpointTranslate,
		EndpointImages,
		EndpointYouTubeVideo,
	}
}
