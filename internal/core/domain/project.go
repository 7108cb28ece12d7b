package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Environment is a named environment of a project with every path resolved.
type Environment struct {
	Name     string
	Sources  []string
	Prefix   string
	Lockfile string
	Condarc  string
}

// MarkerPath returns the file whose presence means the prefix is installed.
func (e Environment) MarkerPath() string {
	return filepath.Join(e.Prefix, CondaMetaDirName, HistoryFileName)
}

// Command is a project command bound to the environment it runs in.
type Command struct {
	Name        string
	Cmd         string
	Environment Environment
	Variables   *OrderedMap[*string]
	Directory   string
}

// Project aggregates the environments and commands declared for a directory.
type Project struct {
	Directory string
	Name      string
	Variables *OrderedMap[*string]

	environments *OrderedMap[Environment]
	commands     *OrderedMap[Command]
}

// NewProject resolves a parsed project file against its directory.
// Relative source paths are taken relative to dir.
func NewProject(dir string, file *ProjectFile) (*Project, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	p := &Project{
		Directory:    dir,
		Name:         file.Name,
		Variables:    file.Variables,
		environments: NewOrderedMap[Environment](),
		commands:     NewOrderedMap[Command](),
	}
	if p.Variables == nil {
		p.Variables = NewOrderedMap[*string]()
	}

	for _, name := range file.Environments.Keys() {
		sources, _ := file.Environments.Get(name)
		resolved := make([]string, 0, len(sources))
		for _, src := range sources {
			if !filepath.IsAbs(src) {
				src = filepath.Join(dir, src)
			}
			resolved = append(resolved, filepath.Clean(src))
		}
		p.environments.Set(name, Environment{
			Name:     name,
			Sources:  resolved,
			Prefix:   PrefixPath(dir, name),
			Lockfile: LockfilePath(dir, name),
			Condarc:  CondarcPath(dir),
		})
	}

	first := file.Environments.Keys()[0]
	for _, name := range file.Commands.Keys() {
		spec, _ := file.Commands.Get(name)
		envName := first
		if spec.Environment != nil {
			envName = *spec.Environment
		}
		env, _ := p.environments.Get(envName)
		p.commands.Set(name, Command{
			Name:        name,
			Cmd:         spec.Cmd,
			Environment: env,
			Variables:   p.Variables,
			Directory:   dir,
		})
	}

	return p, nil
}

// Environments returns the environments in declaration order.
func (p *Project) Environments() []Environment {
	out := make([]Environment, 0, p.environments.Len())
	for _, name := range p.environments.Keys() {
		env, _ := p.environments.Get(name)
		out = append(out, env)
	}
	return out
}

// Environment looks up an environment by name.
func (p *Project) Environment(name string) (Environment, error) {
	env, ok := p.environments.Get(name)
	if !ok {
		err := zerr.With(ErrEnvironmentNotFound, "environment", name)
		return Environment{}, zerr.With(err, "project", p.Name)
	}
	return env, nil
}

// DefaultEnvironment returns the first declared environment.
func (p *Project) DefaultEnvironment() Environment {
	env, _ := p.environments.Get(p.environments.Keys()[0])
	return env
}

// Commands returns the commands in declaration order.
func (p *Project) Commands() []Command {
	out := make([]Command, 0, p.commands.Len())
	for _, name := range p.commands.Keys() {
		cmd, _ := p.commands.Get(name)
		out = append(out, cmd)
	}
	return out
}

// Command looks up a command by name.
func (p *Project) Command(name string) (Command, error) {
	cmd, ok := p.commands.Get(name)
	if !ok {
		err := zerr.With(ErrCommandNotFound, "command", name)
		return Command{}, zerr.With(err, "project", p.Name)
	}
	return cmd, nil
}

// DefaultCommand returns the first declared command.
func (p *Project) DefaultCommand() (Command, error) {
	if p.commands.Len() == 0 {
		return Command{}, zerr.With(ErrNoCommands, "project", p.Name)
	}
	cmd, _ := p.commands.Get(p.commands.Keys()[0])
	return cmd, nil
}
