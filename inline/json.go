package inline

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pencuri-cli/pencuri/catalog"
)

// Output is the JSON document written by inline mode.
type Output struct {
	Site   string    `json:"site"`
	Query  string    `json:"query,omitempty"`
	URL    string    `json:"url,omitempty"`
	Result []*Result `json:"result"`
}

// Result is one listed entry with whatever was resolved for it.
type Result struct {
	Entry   *catalog.Entry          `json:"entry"`
	Seasons []*Season               `json:"seasons,omitempty"`
	Sources []*catalog.PlayerSource `json:"sources,omitempty"`
}

type Season struct {
	Season   *catalog.Season `json:"season"`
	Episodes []*Episode      `json:"episodes"`
}

type Episode struct {
	Episode *catalog.Episode        `json:"episode"`
	Sources []*catalog.PlayerSource `json:"sources,omitempty"`
}

func writeJson(out *Output, options *Options) error {
	if out.Result == nil {
		out.Result = []*Result{}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return err
	}

	_, err = options.Out.Write(data)
	return err
}

// Schema returns the JSON schema of Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "season", "episode", "output":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	return reflector.Reflect(&Output{})
}
