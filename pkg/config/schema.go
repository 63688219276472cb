package config

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/invopop/jsonschema"
)

// The schema is reflected from these document-shaped types rather than from
// types.Config, whose ordered maps and content values decode by hand.
type schemaDocument struct {
	Information *schemaInfo    `json:"information,omitempty"`
	Infomation  *schemaInfo    `json:"infomation,omitempty" jsonschema:"description=Legacy spelling of information"`
	Install     *schemaInstall `json:"install,omitempty"`
}

type schemaInfo struct {
	Name         string `json:"name" jsonschema:"minLength=1,pattern=^[^/]+$,description=Names the install directory under the deploy root"`
	Description  string `json:"description,omitempty"`
	InstallWhile string `json:"install_while,omitempty" jsonschema:"description=Shell predicate gating the whole configuration"`
}

type schemaInstall struct {
	Apt     []string                         `json:"apt,omitempty" jsonschema:"description=Packages installed with the package manager"`
	Alias   map[string]string                `json:"alias,omitempty" jsonschema:"description=Shell aliases by name"`
	Command map[string]schemaContentOrString `json:"command,omitempty" jsonschema:"description=Executables placed in the bin directory by name"`
	Env     map[string]string                `json:"env,omitempty" jsonschema:"description=Exported environment variables"`
	Envrc   []schemaContent                  `json:"envrc,omitempty" jsonschema:"description=Snippets appended to the profile"`
	Files   map[string]schemaContentOrString `json:"files,omitempty" jsonschema:"description=Files by target path"`
}

type schemaContent struct{}

func (schemaContent) JSONSchema() *jsonschema.Schema {
	return contentSchema()
}

type schemaContentOrString struct{}

func (schemaContentOrString) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", Description: "Shorthand for raw content"},
			contentSchema(),
		},
	}
}

// contentSchema accepts an object holding exactly one of the content kinds.
func contentSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{Description: "Content source"}
	for _, kind := range types.ContentKinds {
		props := jsonschema.NewProperties()
		props.Set(string(kind), &jsonschema.Schema{Type: "string"})
		s.OneOf = append(s.OneOf, &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			Required:             []string{string(kind)},
			AdditionalProperties: jsonschema.FalseSchema,
		})
	}
	return s
}

// Schema returns the JSON Schema of configuration documents. YAML documents
// follow the same structure. Unknown keys are allowed, matching Parse.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
		Namer: func(t reflect.Type) string {
			return strings.TrimPrefix(t.Name(), "schema")
		},
	}

	s := r.Reflect(&schemaDocument{})
	s.Title = "pioneer configuration"
	s.AnyOf = []*jsonschema.Schema{
		{Required: []string{infoKey}},
		{Required: []string{infoLegacy}},
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode schema")
	}
	return append(data, '\n'), nil
}
