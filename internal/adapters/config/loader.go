// Package config reads and writes conda-project descriptors.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the project rooted at dir.
func (l *Loader) Load(dir string) (*domain.Project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "directory", dir)
	}

	var file *domain.ProjectFile
	if projectPath := FindFile(absDir, domain.ProjectFileNames()); projectPath != "" {
		file, err = l.LoadProjectFile(projectPath)
		if err != nil {
			return nil, err
		}
	} else {
		l.Logger.Info(fmt.Sprintf(
			"No %s or %s file was found. Checking for environment YAML files.",
			domain.ProjectFileName, domain.ProjectFileNameAlt,
		))
		envPath := FindFile(absDir, domain.EnvironmentFileNames())
		if envPath == "" {
			return nil, zerr.With(domain.ErrEnvironmentFileNotFound, "directory", absDir)
		}
		file = ImplicitProject(absDir, filepath.Base(envPath))
	}

	return domain.NewProject(absDir, file)
}

// LoadProjectFile parses a project descriptor.
func (l *Loader) LoadProjectFile(path string) (*domain.ProjectFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	file, err := ParseProject(data)
	if err != nil {
		return nil, describe(err, path, projectSchema)
	}
	return file, nil
}

// LoadEnvironment parses an environment descriptor.
func (l *Loader) LoadEnvironment(path string) (*domain.EnvironmentFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	file, err := ParseEnvironment(data)
	if err != nil {
		return nil, describe(err, path, environmentSchema)
	}
	return file, nil
}

// LoadDotEnv reads the .env file of dir.
func (l *Loader) LoadDotEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, domain.DotEnvFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error()), "file", path)
	}
	return vars, nil
}

// ParseProject decodes project descriptor content.
func ParseProject(data []byte) (*domain.ProjectFile, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return decodeProject(root)
}

// ParseEnvironment decodes environment descriptor content.
func ParseEnvironment(data []byte) (*domain.EnvironmentFile, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return decodeEnvironment(root)
}

// ImplicitProject is the project assumed for a directory holding only an environment file.
func ImplicitProject(dir, envFile string) *domain.ProjectFile {
	envs := domain.NewOrderedMap[[]string]()
	envs.Set(domain.DefaultEnvironmentName, []string{envFile})
	return &domain.ProjectFile{
		Name:         filepath.Base(dir),
		Environments: envs,
		Variables:    domain.NewOrderedMap[*string](),
		Commands:     domain.NewOrderedMap[domain.CommandSpec](),
	}
}

// FindFile returns the first of names present in dir, or "" when none is.
func FindFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func readFile(path string) ([]byte, error) {
	// #nosec G304 -- descriptor paths come from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error()), "file", path)
	}
	return data, nil
}

func describe(err error, path, schema string) error {
	wrapped := zerr.Wrap(err, fmt.Sprintf("failed to read %s as %s", path, schema))
	return zerr.With(wrapped, "file", path)
}
