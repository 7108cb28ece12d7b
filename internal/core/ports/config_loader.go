package ports

import "go.trai.ch/conda-project/internal/core/domain"

// ConfigLoader reads project and environment descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the project in dir. Without a project descriptor, an
	// environment descriptor yields an implicit single-environment project.
	Load(dir string) (*domain.Project, error)
	// LoadEnvironment parses one environment descriptor.
	LoadEnvironment(path string) (*domain.EnvironmentFile, error)
	// LoadDotEnv returns the variables defined in the .env file of dir.
	// A missing file yields an empty map.
	LoadDotEnv(dir string) (map[string]string, error)
}

// ConfigWriter persists descriptors in their canonical form.
type ConfigWriter interface {
	WriteProject(path string, file *domain.ProjectFile) error
	// WriteEnvironment writes file, leaving out empty keys when dropEmpty is set.
	WriteEnvironment(path string, file *domain.EnvironmentFile, dropEmpty bool) error
	WriteCondarc(path string, settings *domain.OrderedMap[string]) error
}
