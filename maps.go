package scrappa

import "context"

// MapsClient wraps the Google Maps endpoints.
type MapsClient struct {
	client Getter
}

// NewMapsClient returns a Google Maps client issuing requests through g.
func NewMapsClient(g Getter) *MapsClient {
	return &MapsClient{client: g}
}

// Autocomplete returns place suggestions for query.
func (m *MapsClient) Autocomplete(ctx context.Context, query string) (*Result, error) {
	if query == "" {
		return nil, missingParameter("query")
	}
	return m.client.Get(ctx, EndpointMapsAutocomplete.Path(), Params{"query": query})
}

// AdvancedSearch searches places matching query. params must carry zoom and
// may carry lat, lon and limit or any other key the API accepts.
//
// query and zoom are always sent, even when params sets them empty; other
// keys with nil or empty-string values are dropped.
func (m *MapsClient) AdvancedSearch(ctx context.Context, query string, params Params) (*Result, error) {
	if query == "" {
		return nil, missingParameter("query")
	}
	if !present(params, "zoom") {
		return nil, missingParameter("zoom")
	}
	q := build(Params{"query": query}, params, "query", "zoom")
	return m.client.Get(ctx, EndpointMapsAdvancedSearch.Path(), q)
}

// GoogleReviews lists reviews of a business. params must carry sort and may
// carry search, limit and page.
func (m *MapsClient) GoogleReviews(ctx context.Context, businessID string, params Params) (*Result, error) {
	if businessID == "" {
		return nil, missingParameter("business_id")
	}
	if !present(params, "sort") {
		return nil, missingParameter("sort")
	}
	q := build(Params{"business_id": businessID}, params, "business_id", "sort")
	return m.client.Get(ctx, EndpointMapsReviews.Path(), q)
}

// BusinessDetails fetches the details of one business.
func (m *MapsClient) BusinessDetails(ctx context.Context, businessID string) (*Result, error) {
	if businessID == "" {
		return nil, missingParameter("business_id")
	}
	return m.client.Get(ctx, EndpointMapsBusinessDetails.Path(), Params{"business_id": businessID})
}

// present reports whether key is set to a non-nil value. Empty strings count
// as present; the API decides what to do with them.
func present(p Params, key string) bool {
	v, ok := p[key]
	return ok && v != nil
}
