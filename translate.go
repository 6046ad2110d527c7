package scrappa

import "context"

// TranslateClient wraps the Google Translate endpoint.
type TranslateClient struct {
	client Getter
}

func NewTranslateClient(g Getter) *TranslateClient {
	return &TranslateClient{client: g}
}

// Translate translates params["text"] from params["source"] to
// params["target"]. All three are required; params is sent unchanged.
func (t *TranslateClient) Translate(ctx context.Context, params Params) (*Result, error) {
	for _, key := range []string{"text", "source", "target"} {
		if isBlank(params[key]) {
			return nil, missingParameter(key)
		}
	}
	return t.client.Get(ctx, EndpointTranslate.Path(), params)
}

// TranslateText is Translate with typed options.
func (t *TranslateClient) TranslateText(ctx context.Context, opts TranslateOptions) (*Result, error) {
	p, err := ParamsFrom(opts)
	if err != nil {
		return nil, err
	}
	return t.Translate(ctx, p)
}
