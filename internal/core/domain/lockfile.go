package domain

import (
	"slices"
	"strings"
)

// Lockfile is the resolved state of an environment across platforms,
// in the conda-lock version 1 layout.
type Lockfile struct {
	Version  int
	Metadata LockMetadata
	Packages []LockedPackage
}

// LockMetadata records what a lockfile was generated from.
type LockMetadata struct {
	// ContentHash maps a platform to the hash of the sources it was locked from.
	ContentHash map[string]string
	Channels    []LockChannel
	Platforms   []string
	Sources     []string
}

// LockChannel is a channel the lockfile was solved against.
type LockChannel struct {
	URL         string
	UsedEnvVars []string
}

// PackageHash holds the archive digests of a locked package.
type PackageHash struct {
	MD5    string
	SHA256 string
}

// LockedPackage is one package pinned for one platform.
type LockedPackage struct {
	Name     string
	Version  string
	Manager  string
	Platform string
	URL      string
	Hash     PackageHash
	Category string
	Optional bool
}

const (
	// ManagerConda marks packages installed by conda.
	ManagerConda = "conda"
	// ManagerPip marks packages installed by pip.
	ManagerPip = "pip"

	explicitMarker = "@EXPLICIT"
)

// HasPlatform reports whether the lockfile was solved for platform.
func (l *Lockfile) HasPlatform(platform string) bool {
	return slices.Contains(l.Metadata.Platforms, platform)
}

// RenderExplicit renders the package list of platform in conda's explicit format.
// The first three lines are comments and the fourth is the @EXPLICIT marker.
func (l *Lockfile) RenderExplicit(platform string) []string {
	lines := []string{
		"# Generated by conda-project.",
		"# platform: " + platform,
		"# input_hash: " + l.Metadata.ContentHash[platform],
		explicitMarker,
	}

	var pip []string
	for _, pkg := range l.Packages {
		if pkg.Platform != platform || pkg.Optional {
			continue
		}
		switch pkg.Manager {
		case ManagerPip:
			line := "# pip " + pkg.Name + " @ " + pkg.URL
			if pkg.Hash.SHA256 != "" {
				line += "#sha256=" + pkg.Hash.SHA256
			}
			pip = append(pip, line)
		default:
			line := pkg.URL
			if pkg.Hash.MD5 != "" {
				line += "#" + pkg.Hash.MD5
			}
			lines = append(lines, line)
		}
	}

	return append(lines, pip...)
}

// ExplicitEntries normalises a rendered explicit listing for comparison.
// The three header lines are dropped before NormalizeExplicit is applied.
func ExplicitEntries(lines []string) []string {
	if len(lines) <= 3 {
		return nil
	}
	return NormalizeExplicit(lines[3:])
}

// NormalizeExplicit cuts each line at its first '#', trims it and discards
// lines left empty.
func NormalizeExplicit(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
