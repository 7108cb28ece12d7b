package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandFailed is returned when an external tool exits with a non-zero status.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrDescriptorEmpty is returned when a descriptor file has no content.
	ErrDescriptorEmpty = zerr.New("the file appears to be empty")

	// ErrDescriptorInvalid is returned when a descriptor file fails schema validation.
	ErrDescriptorInvalid = zerr.New("descriptor failed validation")

	// ErrDescriptorReadFailed is returned when a descriptor file cannot be read from disk.
	ErrDescriptorReadFailed = zerr.New("failed to read descriptor")

	// ErrDescriptorWriteFailed is returned when a descriptor file cannot be written.
	ErrDescriptorWriteFailed = zerr.New("failed to write descriptor")

	// ErrEnvironmentFileNotFound is returned when neither environment.yml nor environment.yaml exists.
	ErrEnvironmentFileNotFound = zerr.New("no Conda environment.yml or environment.yaml file was found")

	// ErrInvalidDependency is returned when a dependency map uses a key other than pip.
	ErrInvalidDependency = zerr.New(`invalid dependency map, only "pip:" is allowed`)

	// ErrInvalidVariable is returned when a variable value is not a scalar.
	ErrInvalidVariable = zerr.New("invalid variable value")

	// ErrUnknownEnvironmentRef is returned when a command references an undeclared environment.
	ErrUnknownEnvironmentRef = zerr.New("command references an undeclared environment")

	// ErrNoEnvironments is returned when a project declares no environments.
	ErrNoEnvironments = zerr.New("project declares no environments")

	// ErrEnvironmentNotFound is returned when a requested environment is not declared in the project.
	ErrEnvironmentNotFound = zerr.New("environment not found")

	// ErrCommandNotFound is returned when a requested command is not declared in the project.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrNoCommands is returned when running the default command of a project without commands.
	ErrNoCommands = zerr.New("project declares no commands")

	// ErrUnsupportedPlatform is returned when the current platform is not in the locked platforms.
	ErrUnsupportedPlatform = zerr.New("current platform is not in the supported locked platforms")

	// ErrLockFailed is returned when the lock generator cannot solve the environment.
	ErrLockFailed = zerr.New("project failed to lock")

	// ErrLockfileReadFailed is returned when a lockfile cannot be read or parsed.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileWriteFailed is returned when a lockfile cannot be stamped or installed.
	ErrLockfileWriteFailed = zerr.New("failed to write lockfile")

	// ErrPlatformDetectionFailed is returned when the package manager does not report a platform.
	ErrPlatformDetectionFailed = zerr.New("failed to detect the current platform")

	// ErrMissingVariable is returned when a project variable has neither a default nor a provided value.
	ErrMissingVariable = zerr.New("variable has no default and was not provided")

	// ErrPrefixWriteFailed is returned when a file inside an environment prefix cannot be written.
	ErrPrefixWriteFailed = zerr.New("failed to write into environment prefix")

	// ErrProjectCreateFailed is returned when a new project directory cannot be initialised.
	ErrProjectCreateFailed = zerr.New("failed to create project")

	// ErrInvalidCondaConfig is returned when a create-time config entry is not key=value.
	ErrInvalidCondaConfig = zerr.New("conda config entries must be key=value")

	// ErrCheckFailed is returned when at least one environment fails the project check.
	ErrCheckFailed = zerr.New("project check failed")
)
