package domain

import "go.trai.ch/zerr"

// CommandSpec is a named command as declared in the project descriptor.
type CommandSpec struct {
	// Cmd is the shell command line.
	Cmd string

	// Environment names the environment the command runs in. Nil selects
	// the first declared environment.
	Environment *string

	// Short reports whether the command was written as a plain string.
	Short bool
}

// ProjectFile is the parsed form of conda-project.yml.
type ProjectFile struct {
	Name         string
	Environments *OrderedMap[[]string]
	Variables    *OrderedMap[*string]
	Commands     *OrderedMap[CommandSpec]
}

// Validate checks the cross-field invariants that the YAML schema alone cannot express.
func (p *ProjectFile) Validate() error {
	if p.Environments.Len() == 0 {
		return ErrNoEnvironments
	}
	for _, name := range p.Commands.Keys() {
		spec, _ := p.Commands.Get(name)
		if spec.Environment == nil {
			continue
		}
		if !p.Environments.Has(*spec.Environment) {
			err := zerr.With(ErrUnknownEnvironmentRef, "command", name)
			return zerr.With(err, "environment", *spec.Environment)
		}
	}
	return nil
}

// Dependency is one entry of an environment's dependency list: either a
// conda match spec or the reserved pip sub-list.
type Dependency struct {
	Spec string
	Pip  []string
}

// IsPip reports whether the dependency is the pip sub-list.
func (d Dependency) IsPip() bool {
	return d.Pip != nil
}

// EnvironmentFile is the parsed form of an environment.yml source file.
// Nil slices and pointers mean the key was absent.
type EnvironmentFile struct {
	Name         *string
	Channels     []string
	Dependencies []Dependency
	Variables    *OrderedMap[string]
	Prefix       *string
	Platforms    []string
}

// CondaSpecs returns the conda match specs in declaration order.
func (e *EnvironmentFile) CondaSpecs() []string {
	var out []string
	for _, d := range e.Dependencies {
		if !d.IsPip() {
			out = append(out, d.Spec)
		}
	}
	return out
}

// PipSpecs returns the pip requirement specs in declaration order.
func (e *EnvironmentFile) PipSpecs() []string {
	var out []string
	for _, d := range e.Dependencies {
		out = append(out, d.Pip...)
	}
	return out
}
