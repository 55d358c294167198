package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds seed word lists relative to the places a user
// is likely to keep them.
type PathResolver struct {
	executableDir string
	workDir       string
	configDir     string
}

// NewPathResolver creates a resolver rooted at the running executable,
// the working directory and configDir.
func NewPathResolver(configDir string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workDir:       workDir,
		configDir:     configDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, workDir=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr, nil
}

// candidates lists where a relative path may live, most specific first.
func (pr *PathResolver) candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	var out []string
	if pr.workDir != "" {
		out = append(out, filepath.Join(pr.workDir, path))
	}
	out = append(out, filepath.Join(pr.executableDir, path))
	if pr.configDir != "" {
		out = append(out, filepath.Join(pr.configDir, path))
	}
	return out
}

// Resolve returns the first existing location of path.
func (pr *PathResolver) Resolve(path string) (string, error) {
	tried := pr.candidates(path)
	for _, candidate := range tried {
		if FileExists(candidate) {
			log.Debugf("Resolved %s to %s", path, candidate)
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s not found (tried %v): %w", path, tried, os.ErrNotExist)
}

// ResolveAll resolves every path, skipping the ones that cannot be found.
func (pr *PathResolver) ResolveAll(paths []string) []string {
	var out []string
	for _, p := range paths {
		resolved, err := pr.Resolve(p)
		if err != nil {
			log.Warnf("Skipping seed path: %v", err)
			continue
		}
		out = append(out, resolved)
	}
	return out
}
