package scrappa

import "context"

// ImagesClient wraps the Google Images endpoint.
type ImagesClient struct {
	client Getter
}

func NewImagesClient(g Getter) *ImagesClient {
	return &ImagesClient{client: g}
}

// Images runs an image search. Extra params are passed through; empty ones are dropped.
func (i *ImagesClient) Images(ctx context.Context, query string, params Params) (*Result, error) {
	if query == "" {
		return nil, missingParameter("query")
	}
	return i.client.Get(ctx, EndpointImages.Path(), build(Params{"query": query}, params, "query"))
}
