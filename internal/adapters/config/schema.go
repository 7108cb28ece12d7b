package config

import (
	"fmt"
	"slices"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	projectSchema     = "project file"
	environmentSchema = "environment file"

	nullTag = "!!null"
	strTag  = "!!str"
)

var (
	projectKeys     = []string{"name", "environments", "variables", "commands"}
	environmentKeys = []string{"name", "channels", "dependencies", "variables", "prefix", "platforms"}
	commandKeys     = []string{"cmd", "environment"}
)

// entry is one key/value pair of a YAML mapping.
type entry struct {
	key   string
	node  *yaml.Node
	value *yaml.Node
}

func invalidf(n *yaml.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if n != nil && n.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", n.Line, msg)
	}
	return zerr.Wrap(domain.ErrDescriptorInvalid, msg)
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == nullTag)
}

// parseDocument returns the top-level mapping of a descriptor.
func parseDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDescriptorInvalid.Error())
	}
	if doc.Kind == 0 || len(doc.Content) == 0 || isNull(doc.Content[0]) {
		return nil, domain.ErrDescriptorEmpty
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, invalidf(root, "expected a mapping at the top level")
	}
	return root, nil
}

// entries lists the pairs of a mapping in document order, rejecting duplicate keys.
func entries(n *yaml.Node) ([]entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, invalidf(n, "expected a mapping")
	}

	out := make([]entry, 0, len(n.Content)/2)
	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, invalidf(k, "mapping keys must be strings")
		}
		if _, dup := seen[k.Value]; dup {
			return nil, invalidf(k, "duplicate key %q", k.Value)
		}
		seen[k.Value] = struct{}{}
		out = append(out, entry{key: k.Value, node: k, value: v})
	}
	return out, nil
}

// fields indexes a mapping by key and rejects keys outside allowed.
func fields(n *yaml.Node, allowed []string) (map[string]*yaml.Node, error) {
	es, err := entries(n)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*yaml.Node, len(es))
	for _, e := range es {
		if !slices.Contains(allowed, e.key) {
			return nil, invalidf(e.node, "unknown key %q", e.key)
		}
		out[e.key] = e.value
	}
	return out, nil
}

func scalar(n *yaml.Node, field string) (string, error) {
	if isNull(n) || n.Kind != yaml.ScalarNode {
		return "", invalidf(n, "%s must be a string", field)
	}
	return n.Value, nil
}

func optionalScalar(n *yaml.Node, field string) (*string, error) {
	if isNull(n) {
		return nil, nil
	}
	v, err := scalar(n, field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// stringList decodes a sequence of strings. A null node yields nil.
func stringList(n *yaml.Node, field string) ([]string, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, invalidf(n, "%s must be a list", field)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := scalar(item, field+" entries")
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeProject(root *yaml.Node) (*domain.ProjectFile, error) {
	fs, err := fields(root, projectKeys)
	if err != nil {
		return nil, err
	}

	file := &domain.ProjectFile{
		Environments: domain.NewOrderedMap[[]string](),
		Variables:    domain.NewOrderedMap[*string](),
		Commands:     domain.NewOrderedMap[domain.CommandSpec](),
	}

	nameNode, ok := fs["name"]
	if !ok {
		return nil, invalidf(root, "missing required key %q", "name")
	}
	if file.Name, err = scalar(nameNode, "name"); err != nil {
		return nil, err
	}

	envsNode, ok := fs["environments"]
	if !ok || isNull(envsNode) {
		return nil, invalidf(root, "missing required key %q", "environments")
	}
	envs, err := entries(envsNode)
	if err != nil {
		return nil, err
	}
	for _, e := range envs {
		if isNull(e.value) {
			return nil, invalidf(e.node, "environment %q must list its source files", e.key)
		}
		sources, err := stringList(e.value, "environment sources")
		if err != nil {
			return nil, err
		}
		file.Environments.Set(e.key, sources)
	}

	if n, ok := fs["variables"]; ok && !isNull(n) {
		vars, err := entries(n)
		if err != nil {
			return nil, err
		}
		for _, e := range vars {
			if !isNull(e.value) && e.value.Kind != yaml.ScalarNode {
				return nil, zerr.With(domain.ErrInvalidVariable, "variable", e.key)
			}
			v, _ := optionalScalar(e.value, "variable")
			file.Variables.Set(e.key, v)
		}
	}

	if n, ok := fs["commands"]; ok && !isNull(n) {
		cmds, err := entries(n)
		if err != nil {
			return nil, err
		}
		for _, e := range cmds {
			spec, err := decodeCommand(e)
			if err != nil {
				return nil, err
			}
			file.Commands.Set(e.key, spec)
		}
	}

	return file, nil
}

func decodeCommand(e entry) (domain.CommandSpec, error) {
	if e.value.Kind == yaml.ScalarNode && !isNull(e.value) {
		return domain.CommandSpec{Cmd: e.value.Value, Short: true}, nil
	}
	if e.value.Kind != yaml.MappingNode {
		return domain.CommandSpec{}, invalidf(e.node, "command %q must be a string or a mapping", e.key)
	}

	fs, err := fields(e.value, commandKeys)
	if err != nil {
		return domain.CommandSpec{}, err
	}
	cmdNode, ok := fs["cmd"]
	if !ok {
		return domain.CommandSpec{}, invalidf(e.value, "command %q is missing required key %q", e.key, "cmd")
	}
	cmd, err := scalar(cmdNode, "cmd")
	if err != nil {
		return domain.CommandSpec{}, err
	}
	env, err := optionalScalar(fs["environment"], "environment")
	if err != nil {
		return domain.CommandSpec{}, err
	}
	return domain.CommandSpec{Cmd: cmd, Environment: env}, nil
}

func decodeEnvironment(root *yaml.Node) (*domain.EnvironmentFile, error) {
	fs, err := fields(root, environmentKeys)
	if err != nil {
		return nil, err
	}

	file := &domain.EnvironmentFile{}
	if file.Name, err = optionalScalar(fs["name"], "name"); err != nil {
		return nil, err
	}
	if file.Channels, err = stringList(fs["channels"], "channels"); err != nil {
		return nil, err
	}
	if file.Platforms, err = stringList(fs["platforms"], "platforms"); err != nil {
		return nil, err
	}
	if file.Prefix, err = optionalScalar(fs["prefix"], "prefix"); err != nil {
		return nil, err
	}
	if file.Dependencies, err = decodeDependencies(fs["dependencies"]); err != nil {
		return nil, err
	}

	file.Variables = domain.NewOrderedMap[string]()
	if n := fs["variables"]; !isNull(n) {
		vars, err := entries(n)
		if err != nil {
			return nil, err
		}
		for _, e := range vars {
			if isNull(e.value) || e.value.Kind != yaml.ScalarNode {
				return nil, zerr.With(domain.ErrInvalidVariable, "variable", e.key)
			}
			file.Variables.Set(e.key, e.value.Value)
		}
	}

	return file, nil
}

func decodeDependencies(n *yaml.Node) ([]domain.Dependency, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, invalidf(n, "dependencies must be a list")
	}

	deps := make([]domain.Dependency, 0, len(n.Content))
	for _, item := range n.Content {
		switch item.Kind {
		case yaml.MappingNode:
			es, err := entries(item)
			if err != nil {
				return nil, err
			}
			if len(es) != 1 || es[0].key != domain.ManagerPip {
				keys := make([]string, 0, len(es))
				for _, e := range es {
					keys = append(keys, e.key)
				}
				return nil, zerr.With(domain.ErrInvalidDependency, "keys", keys)
			}
			pip, err := stringList(es[0].value, "pip")
			if err != nil {
				return nil, err
			}
			if pip == nil {
				pip = []string{}
			}
			deps = append(deps, domain.Dependency{Pip: pip})
		default:
			spec, err := scalar(item, "dependency")
			if err != nil {
				return nil, err
			}
			deps = append(deps, domain.Dependency{Spec: spec})
		}
	}
	return deps, nil
}
