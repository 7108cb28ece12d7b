package config

import (
	"bytes"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: v}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}
}

func optionalStrNode(v *string) *yaml.Node {
	if v == nil {
		return nullNode()
	}
	return strNode(*v)
}

func seqNode(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	if len(items) == 0 {
		n.Style = yaml.FlowStyle
	}
	for _, item := range items {
		n.Content = append(n.Content, strNode(item))
	}
	return n
}

func optionalSeqNode(items []string) *yaml.Node {
	if items == nil {
		return nullNode()
	}
	return seqNode(items)
}

func mapNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func setField(m *yaml.Node, key string, value *yaml.Node) {
	if value.Kind == yaml.MappingNode && len(value.Content) == 0 {
		value.Style = yaml.FlowStyle
	}
	m.Content = append(m.Content, strNode(key), value)
}

func encodeProject(f *domain.ProjectFile) *yaml.Node {
	root := mapNode()
	setField(root, "name", strNode(f.Name))

	envs := mapNode()
	for _, name := range f.Environments.Keys() {
		sources, _ := f.Environments.Get(name)
		setField(envs, name, seqNode(sources))
	}
	setField(root, "environments", envs)

	vars := mapNode()
	for _, name := range f.Variables.Keys() {
		v, _ := f.Variables.Get(name)
		setField(vars, name, optionalStrNode(v))
	}
	setField(root, "variables", vars)

	cmds := mapNode()
	for _, name := range f.Commands.Keys() {
		spec, _ := f.Commands.Get(name)
		if spec.Short {
			setField(cmds, name, strNode(spec.Cmd))
			continue
		}
		cmd := mapNode()
		setField(cmd, "cmd", strNode(spec.Cmd))
		setField(cmd, "environment", optionalStrNode(spec.Environment))
		setField(cmds, name, cmd)
	}
	setField(root, "commands", cmds)

	return root
}

// encodeEnvironment renders an environment file. With dropEmpty set, keys
// whose value is absent or empty are left out.
func encodeEnvironment(f *domain.EnvironmentFile, dropEmpty bool) *yaml.Node {
	root := mapNode()
	add := func(key string, value *yaml.Node, empty bool) {
		if dropEmpty && empty {
			return
		}
		setField(root, key, value)
	}

	add("name", optionalStrNode(f.Name), f.Name == nil || *f.Name == "")
	add("channels", optionalSeqNode(f.Channels), len(f.Channels) == 0)

	deps := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range f.Dependencies {
		if d.IsPip() {
			pip := mapNode()
			setField(pip, domain.ManagerPip, seqNode(d.Pip))
			deps.Content = append(deps.Content, pip)
			continue
		}
		deps.Content = append(deps.Content, strNode(d.Spec))
	}
	if len(deps.Content) == 0 {
		deps.Style = yaml.FlowStyle
	}
	add("dependencies", deps, len(f.Dependencies) == 0)

	vars := mapNode()
	for _, k := range f.Variables.Keys() {
		v, _ := f.Variables.Get(k)
		setField(vars, k, strNode(v))
	}
	add("variables", vars, f.Variables.Len() == 0)

	add("prefix", optionalStrNode(f.Prefix), f.Prefix == nil || *f.Prefix == "")
	add("platforms", optionalSeqNode(f.Platforms), len(f.Platforms) == 0)

	return root
}

// encodeCondarc renders key=value settings, reading each value as YAML so
// that booleans and lists keep their type.
func encodeCondarc(settings *domain.OrderedMap[string]) *yaml.Node {
	root := mapNode()
	for _, k := range settings.Keys() {
		raw, _ := settings.Get(k)
		value := strNode(raw)

		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(raw), &doc); err == nil && len(doc.Content) == 1 {
			value = doc.Content[0]
		}
		setField(root, k, value)
	}
	return root
}

func marshal(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(n); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDescriptorWriteFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDescriptorWriteFailed.Error())
	}
	return buf.Bytes(), nil
}

// MarshalProject renders a project file in canonical form.
func MarshalProject(f *domain.ProjectFile) ([]byte, error) {
	return marshal(encodeProject(f))
}

// MarshalEnvironment renders an environment file in canonical form.
func MarshalEnvironment(f *domain.EnvironmentFile, dropEmpty bool) ([]byte, error) {
	return marshal(encodeEnvironment(f, dropEmpty))
}
