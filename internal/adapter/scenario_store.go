// Package adapter contains infrastructure adapters for the viewmock CLI.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/viewmock/internal/model"
)

// ScenarioSuffixes are the file name suffixes discovered as scenario files.
var ScenarioSuffixes = []string{".viewmock.yaml", ".viewmock.yml"}

const recursiveSuffix = "/..."

// ScenarioStore hides filesystem access from the domain layer so the replay
// workflow can be tested without touching the disk.
type ScenarioStore interface {
	// Find expands paths into scenario files. A directory is scanned without
	// descending; a "dir/..." pattern is scanned recursively; a file is
	// returned as is. Files matching one of the exclude regexes are skipped.
	Find(paths []m.Path, exclude ...string) ([]m.Path, error)

	// Load reads and validates a scenario file.
	Load(path m.Path) (m.Scenario, error)
}

// LocalScenarioStore reads scenarios from the local filesystem.
type LocalScenarioStore struct{}

// NewLocalScenarioStore constructs a LocalScenarioStore.
func NewLocalScenarioStore() *LocalScenarioStore {
	return &LocalScenarioStore{}
}

// Find implements ScenarioStore.
func (s *LocalScenarioStore) Find(paths []m.Path, exclude ...string) ([]m.Path, error) {
	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	seen := make(map[m.Path]struct{})

	var found []m.Path

	add := func(p string) {
		path := m.Path(filepath.Clean(p))
		if _, ok := seen[path]; ok || excluded(patterns, string(path)) {
			return
		}

		seen[path] = struct{}{}
		found = append(found, path)
	}

	for _, path := range paths {
		root := string(path)
		recursive := strings.HasSuffix(root, recursiveSuffix)

		if recursive {
			root = strings.TrimSuffix(root, recursiveSuffix)
			if root == "" {
				root = "."
			}
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = walk(root, recursive, func(p string, info os.FileInfo) {
			if !info.IsDir() && isScenarioFile(p) {
				add(p)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	slog.Debug("scenario files found", "count", len(found))

	return found, nil
}

// Load implements ScenarioStore.
func (s *LocalScenarioStore) Load(path m.Path) (m.Scenario, error) {
	// #nosec G304 - scenario paths are supplied by the user on purpose
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Scenario{}, fmt.Errorf("read %s: %w", path, err)
	}

	var scenario m.Scenario
	if err := yaml.Unmarshal(content, &scenario); err != nil {
		return m.Scenario{}, fmt.Errorf("decode %s: %w", path, err)
	}

	scenario.Source = path
	if scenario.Name == "" {
		scenario.Name = scenarioName(string(path))
	}

	if err := scenario.Validate(); err != nil {
		return m.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return scenario, nil
}

// walk iterates over files under root, optionally descending into subdirectories.
func walk(root string, recursive bool, fn func(path string, info os.FileInfo)) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != root {
			base := filepath.Base(path)
			if !recursive || base == ".git" || base == "vendor" || base == "node_modules" {
				return filepath.SkipDir
			}
		}

		fn(path, info)

		return nil
	})
}

func isScenarioFile(path string) bool {
	for _, suffix := range ScenarioSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}

func scenarioName(path string) string {
	base := filepath.Base(path)
	for _, suffix := range ScenarioSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}

	return base
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func excluded(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
