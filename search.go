package scrappa

import "context"

// SearchClient wraps the Google Search endpoint.
type SearchClient struct {
	client Getter
}

func NewSearchClient(g Getter) *SearchClient {
	return &SearchClient{client: g}
}

// Search runs a web search. Extra params are passed through; empty ones are dropped.
func (s *SearchClient) Search(ctx context.Context, query string, params Params) (*Result, error) {
	if query == "" {
		return nil, missingParameter("query")
	}
	return s.client.Get(ctx, EndpointSearch.Path(), build(Params{"query": query}, params, "query"))
}
