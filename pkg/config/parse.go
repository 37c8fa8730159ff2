package config

import (
	"strconv"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// parseYAML walks the document tree so every scalar keeps the text it was
// written with. Mapping keys are joined by dots, sequence items by index.
func parseYAML(data []byte) (map[string]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	values := make(map[string]string)
	flatten("", &root, values)
	return values, nil
}

func flatten(prefix string, node *yaml.Node, into map[string]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	switch node.Kind {
	case yaml.DocumentNode:
		for _, n := range node.Content {
			flatten(prefix, n, into)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Tag == "!!merge" {
				flatten(prefix, value, into)
				continue
			}
			flatten(join(key.Value), value, into)
		}
	case yaml.SequenceNode:
		for i, n := range node.Content {
			flatten(join(strconv.Itoa(i)), n, into)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			flatten(prefix, node.Alias, into)
		}
	case yaml.ScalarNode:
		if prefix == "" {
			return
		}
		if node.Tag == "!!null" {
			into[prefix] = ""
			return
		}
		into[prefix] = node.Value
	}
}

// parseProperties reads the java.util.Properties format: = : or whitespace
// separators, escapes, line continuations and # or ! comments.
func parseProperties(data []byte) (map[string]string, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}
