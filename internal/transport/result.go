package transport

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Params is the query bag sent with a request.
type Params map[string]any

// Result pairs the parameters that were sent with the decoded response.
type Result struct {
	Parameters Params `json:"parameters"`
	Results    any    `json:"results"`

	raw []byte
}

// Raw returns the response body as received, or "{}" when the API answered null.
func (r *Result) Raw() []byte {
	if r.raw == nil && r.Results != nil {
		if b, err := json.Marshal(r.Results); err == nil {
			r.raw = b
		}
	}
	return r.raw
}

// Get evaluates a gjson path against the results, e.g. "data.0.name".
func (r *Result) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw(), path)
}
