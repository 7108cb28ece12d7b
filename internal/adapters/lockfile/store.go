// Package lockfile reads and writes conda-lock version 1 lockfiles.
package lockfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LockfileStore = (*Store)(nil)

type document struct {
	Version  int           `yaml:"version"`
	Metadata metadata      `yaml:"metadata"`
	Package  []packageItem `yaml:"package"`
}

type metadata struct {
	ContentHash map[string]string `yaml:"content_hash"`
	Channels    []channel         `yaml:"channels"`
	Platforms   []string          `yaml:"platforms"`
	Sources     []string          `yaml:"sources"`
}

type channel struct {
	URL         string   `yaml:"url"`
	UsedEnvVars []string `yaml:"used_env_vars"`
}

type packageItem struct {
	Name     string      `yaml:"name"`
	Version  string      `yaml:"version"`
	Manager  string      `yaml:"manager"`
	Platform string      `yaml:"platform"`
	URL      string      `yaml:"url"`
	Hash     packageHash `yaml:"hash"`
	Category string      `yaml:"category"`
	Optional bool        `yaml:"optional"`
}

type packageHash struct {
	MD5    string `yaml:"md5"`
	SHA256 string `yaml:"sha256"`
}

// Store implements ports.LockfileStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Exists reports whether a regular file is present at path.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Read parses the lockfile at path.
func (s *Store) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project directory
	if err != nil {
		return nil, readFailed(err, path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, readFailed(err, path)
	}
	if doc.Version != 1 {
		return nil, readFailed(zerr.With(errors.New("unsupported lockfile version"), "version", doc.Version), path)
	}

	lock := &domain.Lockfile{
		Version: doc.Version,
		Metadata: domain.LockMetadata{
			ContentHash: doc.Metadata.ContentHash,
			Platforms:   doc.Metadata.Platforms,
			Sources:     doc.Metadata.Sources,
		},
		Packages: make([]domain.LockedPackage, 0, len(doc.Package)),
	}
	if lock.Metadata.ContentHash == nil {
		lock.Metadata.ContentHash = map[string]string{}
	}
	for _, ch := range doc.Metadata.Channels {
		lock.Metadata.Channels = append(lock.Metadata.Channels, domain.LockChannel{URL: ch.URL, UsedEnvVars: ch.UsedEnvVars})
	}
	for _, p := range doc.Package {
		lock.Packages = append(lock.Packages, domain.LockedPackage{
			Name:     p.Name,
			Version:  p.Version,
			Manager:  p.Manager,
			Platform: p.Platform,
			URL:      p.URL,
			Hash:     domain.PackageHash{MD5: p.Hash.MD5, SHA256: p.Hash.SHA256},
			Category: p.Category,
			Optional: p.Optional,
		})
	}

	return lock, nil
}

// StampContentHash replaces metadata.content_hash in the lockfile at path.
// Every other node of the document is written back unchanged.
func (s *Store) StampContentHash(path string, hashes map[string]string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is a generator output in a temp dir
	if err != nil {
		return readFailed(err, path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return readFailed(err, path)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return readFailed(errors.New("expected a mapping at the top level"), path)
	}

	meta := lookup(root.Content[0], "metadata")
	if meta == nil || meta.Kind != yaml.MappingNode {
		return readFailed(errors.New(`missing "metadata" mapping`), path)
	}

	hashNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	platforms := make([]string, 0, len(hashes))
	for p := range hashes {
		platforms = append(platforms, p)
	}
	slices.Sort(platforms)
	for _, p := range platforms {
		hashNode.Content = append(hashNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: hashes[p]},
		)
	}

	if existing := lookup(meta, "content_hash"); existing != nil {
		*existing = *hashNode
	} else {
		meta.Content = append(meta.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "content_hash"},
			hashNode,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return writeFailed(err, path)
	}
	if err := enc.Close(); err != nil {
		return writeFailed(err, path)
	}

	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return writeFailed(err, path)
	}
	return nil
}

// Install copies src next to dst and renames it into place.
func (s *Store) Install(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // src is a generator output in a temp dir
	if err != nil {
		return readFailed(err, src)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return writeFailed(err, dst)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return writeFailed(err, dst)
	}
	if err := tmp.Close(); err != nil {
		return writeFailed(err, dst)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return writeFailed(err, dst)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return writeFailed(err, dst)
	}
	return nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func readFailed(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "file", path)
}

func writeFailed(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error()), "file", path)
}
