package domain

import "path/filepath"

const (
	// ProjectFileName is the preferred name of the project descriptor.
	ProjectFileName = "conda-project.yml"

	// ProjectFileNameAlt is the alternative name of the project descriptor.
	ProjectFileNameAlt = "conda-project.yaml"

	// EnvironmentFileName is the preferred name of an environment descriptor.
	EnvironmentFileName = "environment.yml"

	// EnvironmentFileNameAlt is the alternative name of an environment descriptor.
	EnvironmentFileNameAlt = "environment.yaml"

	// EnvsDirName is the directory holding environment prefixes inside a project.
	EnvsDirName = "envs"

	// LockfileSuffix is appended to the environment name to form its lockfile name.
	LockfileSuffix = ".conda-lock.yml"

	// CondarcFileName is the project-local package manager configuration.
	CondarcFileName = ".condarc"

	// DotEnvFileName holds variable overrides for project commands.
	DotEnvFileName = ".env"

	// GitIgnoreFileName is written into every prepared prefix.
	GitIgnoreFileName = ".gitignore"

	// CondaMetaDirName and HistoryFileName form the marker of an installed prefix.
	CondaMetaDirName = "conda-meta"
	HistoryFileName  = "history"

	// DefaultEnvironmentName is the environment synthesised for projects without a project file.
	DefaultEnvironmentName = "default"

	// DefaultChannel is substituted when no source declares channels.
	DefaultChannel = "defaults"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ProjectFileNames lists the recognised project descriptor names in lookup order.
func ProjectFileNames() []string {
	return []string{ProjectFileName, ProjectFileNameAlt}
}

// EnvironmentFileNames lists the recognised environment descriptor names in lookup order.
func EnvironmentFileNames() []string {
	return []string{EnvironmentFileName, EnvironmentFileNameAlt}
}

// PrefixPath returns the install prefix of the named environment.
func PrefixPath(projectDir, envName string) string {
	return filepath.Join(projectDir, EnvsDirName, envName)
}

// LockfilePath returns the lockfile path of the named environment.
func LockfilePath(projectDir, envName string) string {
	return filepath.Join(projectDir, envName+LockfileSuffix)
}

// CondarcPath returns the project-local .condarc path.
func CondarcPath(projectDir string) string {
	return filepath.Join(projectDir, CondarcFileName)
}
