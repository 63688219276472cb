package config

import (
	"fmt"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/arthur-debert/pioneer/pkg/types"
)

var log = logging.GetLogger("config")

const (
	infoKey    = "information"
	infoLegacy = "infomation"
	installKey = "install"
)

// Parse decodes a configuration document. Unknown keys are ignored and absent
// sections are empty.
func Parse(data []byte, format Format) (*types.Config, error) {
	var (
		doc *rawDocument
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatTOML, "":
		doc, err = decodeTOML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown document format %q", string(format))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "malformed %s document", format)
	}

	cfg, err := parseConfig(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration document")
	}
	return cfg, nil
}

func parseConfig(doc *rawDocument) (*types.Config, error) {
	cfg := &types.Config{}

	for _, key := range doc.keys(doc.data) {
		value := doc.data[key]
		if value == nil {
			continue
		}
		switch key {
		case infoKey, infoLegacy:
			if key == infoLegacy {
				if _, ok := doc.data[infoKey]; ok {
					log.Debug().Msg("both information and infomation declared, using information")
					continue
				}
			}
			info, err := parseInfo(key, value)
			if err != nil {
				return nil, err
			}
			cfg.Info = info
		case installKey:
			install, err := parseInstall(doc, value)
			if err != nil {
				return nil, err
			}
			cfg.Install = install
		default:
			log.Debug().Str("key", key).Msg("ignoring unknown top-level key")
		}
	}

	return cfg, nil
}

func parseInfo(section string, value interface{}) (types.Info, error) {
	raw, ok := value.(map[string]interface{})
	if !ok {
		return types.Info{}, fmt.Errorf("%s must be a table", section)
	}

	var info types.Info
	for key, value := range raw {
		var err error
		switch key {
		case "name":
			info.Name, err = parseStringField(section+".name", value)
		case "description":
			info.Description, err = parseOptionalStringField(section+".description", value)
		case "install_while":
			info.InstallWhile, err = parseOptionalStringField(section+".install_while", value)
		default:
			log.Debug().Str("key", section+"."+key).Msg("ignoring unknown key")
		}
		if err != nil {
			return types.Info{}, err
		}
	}
	return info, nil
}

func parseInstall(doc *rawDocument, value interface{}) (types.InstallList, error) {
	raw, ok := value.(map[string]interface{})
	if !ok {
		return types.InstallList{}, fmt.Errorf("%s must be a table", installKey)
	}

	var list types.InstallList
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		name := installKey + "." + key
		switch key {
		case "apt":
			list.Apt, err = parseStringSliceField(name, value)
		case "alias":
			list.Alias, err = parseStringMap(doc, name, value, key)
		case "command":
			list.Command, err = parseContentMap(doc, name, value, key)
		case "env":
			list.Env, err = parseStringMap(doc, name, value, key)
		case "envrc":
			list.Envrc, err = parseContentList(name, value)
		case "files":
			list.Files, err = parseContentMap(doc, name, value, key)
		default:
			log.Debug().Str("key", name).Msg("ignoring unknown install category")
		}
		if err != nil {
			return types.InstallList{}, err
		}
	}
	return list, nil
}

func parseStringMap(doc *rawDocument, name string, value interface{}, category string) (types.OrderedMap[string], error) {
	var out types.OrderedMap[string]
	raw, ok := value.(map[string]interface{})
	if !ok {
		return out, fmt.Errorf("%s must be a table", name)
	}
	for _, key := range doc.keys(raw, installKey, category) {
		str, err := parseStringField(name+"."+key, raw[key])
		if err != nil {
			return types.OrderedMap[string]{}, err
		}
		out.Set(key, str)
	}
	return out, nil
}

func parseContentMap(doc *rawDocument, name string, value interface{}, category string) (types.OrderedMap[types.ContentOrString], error) {
	var out types.OrderedMap[types.ContentOrString]
	raw, ok := value.(map[string]interface{})
	if !ok {
		return out, fmt.Errorf("%s must be a table", name)
	}
	for _, key := range doc.keys(raw, installKey, category) {
		content, err := parseContentOrString(name+"."+key, raw[key])
		if err != nil {
			return types.OrderedMap[types.ContentOrString]{}, err
		}
		out.Set(key, content)
	}
	return out, nil
}

func parseContentList(name string, value interface{}) ([]types.Content, error) {
	var items []interface{}
	switch v := value.(type) {
	case []interface{}:
		items = v
	case []map[string]interface{}:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		return nil, fmt.Errorf("%s must be a list of content objects", name)
	}

	var out []types.Content
	for i, item := range items {
		content, err := parseContent(fmt.Sprintf("%s[%d]", name, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, content)
	}
	return out, nil
}

func parseContentOrString(name string, value interface{}) (types.ContentOrString, error) {
	if str, ok := value.(string); ok {
		return types.StringContent(str), nil
	}
	content, err := parseContent(name, value)
	if err != nil {
		return types.ContentOrString{}, err
	}
	return types.ObjectContent(content), nil
}

// parseContent accepts a table holding exactly one of raw, file or url.
func parseContent(name string, value interface{}) (types.Content, error) {
	raw, ok := value.(map[string]interface{})
	if !ok {
		return types.Content{}, fmt.Errorf("%s must be a string or a content table", name)
	}

	var (
		content types.Content
		found   int
	)
	for _, kind := range types.ContentKinds {
		v, ok := raw[string(kind)]
		if !ok {
			continue
		}
		str, err := parseStringField(name+"."+string(kind), v)
		if err != nil {
			return types.Content{}, err
		}
		content = types.Content{Kind: kind, Value: str}
		found++
	}
	switch {
	case found == 0:
		return types.Content{}, fmt.Errorf("%s must declare one of raw, file or url", name)
	case found > 1:
		return types.Content{}, fmt.Errorf("%s declares more than one of raw, file and url", name)
	}
	if len(raw) > 1 {
		return types.Content{}, fmt.Errorf("%s has unexpected keys besides %s", name, content.Kind)
	}
	return content, nil
}

func parseStringField(name string, value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return str, nil
}

func parseOptionalStringField(name string, value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}
	return parseStringField(name, value)
}

func parseStringSliceField(name string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		if len(v) == 0 {
			return nil, nil
		}
		return v, nil
	case []interface{}:
		var values []string
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a list of strings", name)
			}
			values = append(values, str)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", name)
	}
}
