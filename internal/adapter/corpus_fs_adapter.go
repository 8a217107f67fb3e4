package adapter

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/twins/internal/model"
)

// LocalCorpusAdapter reads a corpus from the local filesystem. Directory
// entries are visited in name order so repeated runs see the same corpus order.
type LocalCorpusAdapter struct{}

// NewLocalCorpusAdapter constructs a LocalCorpusAdapter.
func NewLocalCorpusAdapter() *LocalCorpusAdapter {
	return &LocalCorpusAdapter{}
}

// Load walks <root>/<class>/<student>/<file>. Non-directories at the class and
// student levels are skipped, as are nested directories below a student.
func (a *LocalCorpusAdapter) Load(ctx context.Context, root m.Path, filter CorpusFilter) ([]m.Submission, error) {
	rootPath, err := expandHome(string(root))
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", rootPath)
	}

	classes, err := readDirs(rootPath)
	if err != nil {
		return nil, err
	}

	var submissions []m.Submission

	for _, class := range classes {
		if !filter.AcceptsClass(m.ClassID(class)) {
			continue
		}

		classPath := filepath.Join(rootPath, class)

		students, err := readDirs(classPath)
		if err != nil {
			return nil, err
		}

		for _, student := range students {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			loaded, err := a.loadStudent(rootPath, class, student, filter)
			if err != nil {
				return nil, err
			}

			submissions = append(submissions, loaded...)
		}
	}

	return submissions, nil
}

func (a *LocalCorpusAdapter) loadStudent(rootPath, class, student string, filter CorpusFilter) ([]m.Submission, error) {
	studentPath := filepath.Join(rootPath, class, student)

	entries, err := os.ReadDir(studentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", studentPath, err)
	}

	var submissions []m.Submission

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !filter.AcceptsFile(path.Join(class, student, entry.Name())) {
			continue
		}

		filePath := filepath.Join(studentPath, entry.Name())

		// #nosec G304 - path comes from walking the corpus root
		src, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		submissions = append(submissions, newSubmission(filter, class, student, entry.Name(), m.Path(filePath), src))
	}

	return submissions, nil
}

// readDirs lists the names of the sub-directories of dir in sorted order.
func readDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}

func expandHome(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}

		return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
	}

	if p == "" {
		return ".", nil
	}

	return p, nil
}
