// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 D-os Project Authors

package hidlyaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/D-os/hidl2aidl/internal/hidl"
)

var (
	// ErrPackageNotFound indicates the requested package revision has no
	// schema files under the root.
	ErrPackageNotFound = errors.New("package not found")

	// ErrNewerVersionExists indicates a newer minor revision exists and
	// conversion of the older one was not forced.
	ErrNewerVersionExists = errors.New("a newer minor version exists")
)

// Coordinator locates package revisions on the filesystem and caches
// parsed packages for the duration of a run.
type Coordinator struct {
	root string
	pkgs map[string]*hidl.Package
}

// NewCoordinator creates a coordinator rooted at the schema directory.
func NewCoordinator(root string) *Coordinator {
	return &Coordinator{root: root, pkgs: make(map[string]*hidl.Package)}
}

func (c *Coordinator) versionDir(fq hidl.FQName) string {
	parts := append(strings.Split(fq.Package, "."), fq.Version.String())
	return filepath.Join(c.root, filepath.Join(parts...))
}

// PackageExists reports whether the package revision is present on disk.
func (c *Coordinator) PackageExists(fq hidl.FQName) bool {
	info, err := os.Stat(c.versionDir(fq))
	return err == nil && info.IsDir()
}

// Load parses a package revision, reusing the cache on repeat lookups.
func (c *Coordinator) Load(fq hidl.FQName) (*hidl.Package, error) {
	key := fq.PackageAndVersion().String()
	if pkg, ok := c.pkgs[key]; ok {
		return pkg, nil
	}
	return c.parsePackage(fq.PackageAndVersion())
}

// LowestExistingVersion walks minor revisions downwards and returns the
// oldest still published.
func (c *Coordinator) LowestExistingVersion(fq hidl.FQName) hidl.FQName {
	lowest := fq.PackageAndVersion()
	for lowest.Version.Minor != 0 {
		down := lowest.WithVersion(lowest.Version.DownRev())
		if !c.PackageExists(down) {
			break
		}
		lowest = down
	}
	return lowest
}

// HighestExistingVersion walks minor revisions upwards and returns the
// newest published.
func (c *Coordinator) HighestExistingVersion(fq hidl.FQName) hidl.FQName {
	highest := fq.PackageAndVersion()
	for {
		up := highest.WithVersion(highest.Version.UpRev())
		if !c.PackageExists(up) {
			return highest
		}
		highest = up
	}
}

// ConversionSet loads every minor revision from the oldest published up
// to the requested one and returns the named types to convert, in schema
// order, keeping only the newest revision of each type name. Interfaces
// matter only as scopes, so their nested types join the set while the
// interfaces themselves do not. The second result is the unplaced doc
// comments collected from the revision files.
func (c *Coordinator) ConversionSet(fq hidl.FQName) ([]hidl.NamedType, []string, error) {
	var all []hidl.NamedType
	var comments []string
	for version := c.LowestExistingVersion(fq); ; version = version.WithVersion(version.Version.UpRev()) {
		pkg, err := c.Load(version)
		if err != nil {
			return nil, nil, err
		}
		for _, t := range pkg.AllTypes() {
			if _, ok := t.(*hidl.InterfaceType); ok {
				continue
			}
			all = append(all, t)
		}
		comments = append(comments, pkg.UnplacedComments...)
		if version.Version.Minor >= fq.Version.Minor {
			break
		}
	}

	// Keep only the newest minor revision of each type name.
	newest := make(map[string]hidl.Version)
	for _, t := range all {
		key := typeKey(t.FQName())
		if v, ok := newest[key]; !ok || t.FQName().Version.Newer(v) {
			newest[key] = t.FQName().Version
		}
	}
	var set []hidl.NamedType
	for _, t := range all {
		if t.FQName().Version == newest[typeKey(t.FQName())] {
			set = append(set, t)
		}
	}
	return set, comments, nil
}

func typeKey(fq hidl.FQName) string {
	return fmt.Sprintf("%s/%d/%s", fq.Package, fq.Version.Major, fq.Name)
}

var versionDirPattern = regexp.MustCompile(`^\d+\.\d+$`)

// DiscoverPackages walks the schema root and returns every package
// revision found, sorted. Used by the interactive prompt.
func (c *Coordinator) DiscoverPackages() ([]hidl.FQName, error) {
	var found []hidl.FQName
	err := filepath.WalkDir(c.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || !versionDirPattern.MatchString(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(c.root, filepath.Dir(path))
		if err != nil {
			return err
		}
		version, err := hidl.ParseVersion(d.Name())
		if err != nil {
			return nil //nolint:nilerr // not a version directory
		}
		found = append(found, hidl.FQName{
			Package: strings.ReplaceAll(filepath.ToSlash(rel), "/", "."),
			Version: version,
		})
		return filepath.SkipDir
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Package != found[j].Package {
			return found[i].Package < found[j].Package
		}
		return found[j].Version.Newer(found[i].Version)
	})
	return found, nil
}
