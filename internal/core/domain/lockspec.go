package domain

import "slices"

// LockSpec is the merged content of an environment's sources that a lockfile is solved from.
type LockSpec struct {
	Channels     []string
	Platforms    []string
	Dependencies []Dependency
	Sources      []string

	// ChannelOverrides and PlatformOverrides are the values substituted
	// when no source declared any.
	ChannelOverrides  []string
	PlatformOverrides []string
}

// MergeSources folds environment files into a LockSpec. Channels keep their
// first-seen order without duplicates; platforms are a sorted union;
// dependencies keep declaration order.
func MergeSources(sources []string, files []*EnvironmentFile) LockSpec {
	spec := LockSpec{Sources: slices.Clone(sources)}

	seenChannels := make(map[string]struct{})
	seenPlatforms := make(map[string]struct{})
	for _, f := range files {
		for _, ch := range f.Channels {
			if _, ok := seenChannels[ch]; ok {
				continue
			}
			seenChannels[ch] = struct{}{}
			spec.Channels = append(spec.Channels, ch)
		}
		for _, p := range f.Platforms {
			if _, ok := seenPlatforms[p]; ok {
				continue
			}
			seenPlatforms[p] = struct{}{}
			spec.Platforms = append(spec.Platforms, p)
		}
		spec.Dependencies = append(spec.Dependencies, f.Dependencies...)
	}
	slices.Sort(spec.Platforms)

	return spec
}

// MergeVariables folds the variables of environment files; later files win
// while the first-seen key order is kept.
func MergeVariables(files []*EnvironmentFile) *OrderedMap[string] {
	out := NewOrderedMap[string]()
	for _, f := range files {
		for _, k := range f.Variables.Keys() {
			v, _ := f.Variables.Get(k)
			out.Set(k, v)
		}
	}
	return out
}

// DefaultPlatforms returns the platforms locked when no source declares any:
// the three major host platforms plus current.
func DefaultPlatforms(current string) []string {
	platforms := []string{"linux-64", "osx-64", "win-64"}
	if current != "" && !slices.Contains(platforms, current) {
		platforms = append(platforms, current)
	}
	slices.Sort(platforms)
	return platforms
}
