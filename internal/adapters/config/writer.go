package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ConfigWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteProject writes a project descriptor.
func (w *Writer) WriteProject(path string, file *domain.ProjectFile) error {
	data, err := MarshalProject(file)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// WriteEnvironment writes an environment descriptor.
func (w *Writer) WriteEnvironment(path string, file *domain.EnvironmentFile, dropEmpty bool) error {
	data, err := MarshalEnvironment(file, dropEmpty)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// WriteCondarc writes a project-local .condarc.
func (w *Writer) WriteCondarc(path string, settings *domain.OrderedMap[string]) error {
	data, err := marshal(encodeCondarc(settings))
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorWriteFailed.Error()), "file", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorWriteFailed.Error()), "file", path)
	}
	return nil
}
