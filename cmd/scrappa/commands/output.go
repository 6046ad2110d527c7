package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/loykin/scrappa"
	"github.com/loykin/scrappa/internal/util"
	"gopkg.in/yaml.v3"
)

// render writes res as JSON or YAML. With a path only the matching part of
// the results is written.
func (a *app) render(w io.Writer, res *scrappa.Result) error {
	var doc any = res
	if a.path != "" {
		doc = res.Get(a.path).Value()
	}

	switch util.TrimAndLower(a.output) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid output format: %s (valid: json, yaml)", a.output)
	}
}
