package scrappa

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/loykin/scrappa/internal/transport"
)

// Params is the query bag sent with a request. Values may be strings,
// numbers, bools, nil, slices or nested maps.
type Params = transport.Params

// Result pairs the parameters that were sent with the decoded response.
type Result = transport.Result

// Merge returns a copy of base with the keys of extra written over it.
func Merge(base, extra Params) Params {
	out := make(Params, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Filter returns a copy of p without nil or empty-string values. Keys in
// keep are retained whatever their value.
func Filter(p Params, keep ...string) Params {
	kept := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		kept[k] = struct{}{}
	}
	out := make(Params, len(p))
	for k, v := range p {
		if _, ok := kept[k]; ok {
			out[k] = v
			continue
		}
		if isBlank(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// build merges extra into base and filters the result, keeping required keys.
func build(base, extra Params, required ...string) Params {
	return Filter(Merge(base, extra), required...)
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	}
	return false
}

// ParamsFrom decodes a struct with mapstructure tags into Params. Fields
// tagged omitempty are left out when zero.
func ParamsFrom(v any) (Params, error) {
	if v == nil {
		return Params{}, nil
	}
	if p, ok := v.(Params); ok {
		return p, nil
	}
	if m, ok := v.(map[string]any); ok {
		return Params(m), nil
	}
	out := map[string]any{}
	if err := mapstructure.Decode(v, &out); err != nil {
		return nil, err
	}
	return Params(out), nil
}

// AdvancedSearchOptions are the Google Maps advanced search parameters.
// Zoom is required by the API.
type AdvancedSearchOptions struct {
	Zoom  int     `mapstructure:"zoom"`
	Lat   float64 `mapstructure:"lat,omitempty"`
	Lon   float64 `mapstructure:"lon,omitempty"`
	Limit int     `mapstructure:"limit,omitempty"`
}

// ReviewsOptions are the Google Maps reviews parameters. Sort is required by the API.
type ReviewsOptions struct {
	Sort   int    `mapstructure:"sort"`
	Search string `mapstructure:"search,omitempty"`
	Limit  int    `mapstructure:"limit,omitempty"`
	Page   int    `mapstructure:"page,omitempty"`
}

// TranslateOptions are the Google Translate parameters.
type TranslateOptions struct {
	Text   string `mapstructure:"text"`
	Source string `mapstructure:"source"`
	Target string `mapstructure:"target"`
}
