// Package fs computes content hashes of environment specifications.
package fs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
)

var _ ports.SpecHasher = (*Hasher)(nil)

// Hasher computes content hashes with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ContentHash returns the hash of what a lock for platform is solved from:
// the channels in priority order, the platform and the requested packages.
// Package order does not affect the result.
func (h *Hasher) ContentHash(spec domain.LockSpec, platform string) string {
	hasher := xxhash.New()

	for _, ch := range spec.Channels {
		_, _ = hasher.WriteString(ch)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	_, _ = hasher.WriteString(platform)
	_, _ = hasher.Write([]byte{0})

	for _, dep := range sortedDependencies(spec.Dependencies) {
		_, _ = hasher.WriteString(dep)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// sortedDependencies flattens dependencies into manager-qualified specs.
func sortedDependencies(deps []domain.Dependency) []string {
	var out []string
	for _, d := range deps {
		if d.IsPip() {
			for _, p := range d.Pip {
				out = append(out, domain.ManagerPip+":"+strings.TrimSpace(p))
			}
			continue
		}
		out = append(out, domain.ManagerConda+":"+strings.TrimSpace(d.Spec))
	}
	slices.Sort(out)
	return out
}
