package config

import (
	"bytes"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes cfg as a document in format. Map sections keep their order
// and String shorthand stays a plain string, so Parse(Encode(cfg)) == cfg.
func Encode(cfg *types.Config, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatYAML:
		out, err = encodeYAML(cfg)
	case FormatTOML, "":
		out, err = encodeTOML(cfg)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown document format %q", string(format))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode %s document", format)
	}
	return out, nil
}

func contentValue(c types.Content) map[string]string {
	return map[string]string{string(c.Kind): c.Value}
}

func contentOrStringValue(c types.ContentOrString) interface{} {
	if c.Shorthand {
		return c.Value
	}
	return contentValue(c.Content)
}

// TOML

type tomlWriter struct {
	buf      bytes.Buffer
	sections int
	err      error
}

func (w *tomlWriter) section(name string) {
	if w.sections > 0 {
		w.buf.WriteByte('\n')
	}
	w.sections++
	w.buf.WriteString("[" + name + "]\n")
}

// entry encodes one key/value line. Sections are written by hand so entries
// keep their order; pelletier handles key quoting and value syntax.
func (w *tomlWriter) entry(key string, value interface{}) {
	if w.err != nil {
		return
	}
	enc := toml.NewEncoder(&w.buf)
	enc.SetTablesInline(true)
	w.err = enc.Encode(map[string]interface{}{key: value})
}

func encodeTOML(cfg *types.Config) ([]byte, error) {
	w := &tomlWriter{}

	w.section(infoKey)
	w.entry("name", cfg.Info.Name)
	if cfg.Info.Description != "" {
		w.entry("description", cfg.Info.Description)
	}
	if cfg.Info.InstallWhile != "" {
		w.entry("install_while", cfg.Info.InstallWhile)
	}

	install := cfg.Install
	if len(install.Apt) > 0 || len(install.Envrc) > 0 {
		w.section(installKey)
		if len(install.Apt) > 0 {
			w.entry("apt", install.Apt)
		}
		if len(install.Envrc) > 0 {
			snippets := make([]map[string]string, 0, len(install.Envrc))
			for _, c := range install.Envrc {
				snippets = append(snippets, contentValue(c))
			}
			w.entry("envrc", snippets)
		}
	}

	writeStrings := func(name string, m types.OrderedMap[string]) {
		if m.Len() == 0 {
			return
		}
		w.section(installKey + "." + name)
		for _, e := range m.Entries() {
			w.entry(e.Key, e.Value)
		}
	}
	writeContents := func(name string, m types.OrderedMap[types.ContentOrString]) {
		if m.Len() == 0 {
			return
		}
		w.section(installKey + "." + name)
		for _, e := range m.Entries() {
			w.entry(e.Key, contentOrStringValue(e.Value))
		}
	}

	writeStrings("alias", install.Alias)
	writeContents("command", install.Command)
	writeStrings("env", install.Env)
	writeContents("files", install.Files)

	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// YAML

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func yamlSequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func yamlPut(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, yamlString(key), value)
}

func yamlContent(c types.Content) *yaml.Node {
	m := yamlMapping()
	yamlPut(m, string(c.Kind), yamlString(c.Value))
	return m
}

func yamlContentOrString(c types.ContentOrString) *yaml.Node {
	if c.Shorthand {
		return yamlString(c.Value)
	}
	return yamlContent(c.Content)
}

func encodeYAML(cfg *types.Config) ([]byte, error) {
	info := yamlMapping()
	yamlPut(info, "name", yamlString(cfg.Info.Name))
	if cfg.Info.Description != "" {
		yamlPut(info, "description", yamlString(cfg.Info.Description))
	}
	if cfg.Info.InstallWhile != "" {
		yamlPut(info, "install_while", yamlString(cfg.Info.InstallWhile))
	}

	root := yamlMapping()
	yamlPut(root, infoKey, info)

	l := cfg.Install
	install := yamlMapping()
	if len(l.Apt) > 0 {
		seq := yamlSequence()
		for _, name := range l.Apt {
			seq.Content = append(seq.Content, yamlString(name))
		}
		yamlPut(install, "apt", seq)
	}
	putStrings := func(name string, m types.OrderedMap[string]) {
		if m.Len() == 0 {
			return
		}
		node := yamlMapping()
		for _, e := range m.Entries() {
			yamlPut(node, e.Key, yamlString(e.Value))
		}
		yamlPut(install, name, node)
	}
	putContents := func(name string, m types.OrderedMap[types.ContentOrString]) {
		if m.Len() == 0 {
			return
		}
		node := yamlMapping()
		for _, e := range m.Entries() {
			yamlPut(node, e.Key, yamlContentOrString(e.Value))
		}
		yamlPut(install, name, node)
	}
	putStrings("alias", l.Alias)
	putContents("command", l.Command)
	putStrings("env", l.Env)
	if len(l.Envrc) > 0 {
		seq := yamlSequence()
		for _, c := range l.Envrc {
			seq.Content = append(seq.Content, yamlContent(c))
		}
		yamlPut(install, "envrc", seq)
	}
	putContents("files", l.Files)
	if len(install.Content) > 0 {
		yamlPut(root, installKey, install)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
