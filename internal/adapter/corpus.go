// Package adapter contains input, output and infrastructure adapters for the twins CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"path"
	"regexp"
	"strings"

	m "github.com/mouse-blink/twins/internal/model"
)

// DefaultExtension is the file extension of a submission.
const DefaultExtension = ".py"

// S3Scheme prefixes corpus roots that live in an S3-compatible bucket.
const S3Scheme = "s3://"

// CorpusSource loads every submission below a corpus root laid out as
// <root>/<class>/<student>/<assignment><ext>.
type CorpusSource interface {
	Load(ctx context.Context, root m.Path, filter CorpusFilter) ([]m.Submission, error)
}

// CorpusFilter narrows which entries of a corpus become submissions.
type CorpusFilter struct {
	Extension string
	Classes   []m.ClassID
	Exclude   []*regexp.Regexp
}

// NewCorpusFilter validates the raw filter values coming from flags or config.
func NewCorpusFilter(extension string, classes []string, exclude []string) (CorpusFilter, error) {
	filter := CorpusFilter{Extension: normalizeExtension(extension)}

	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class != "" {
			filter.Classes = append(filter.Classes, m.ClassID(class))
		}
	}

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return CorpusFilter{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filter.Exclude = append(filter.Exclude, re)
	}

	return filter, nil
}

func normalizeExtension(extension string) string {
	extension = strings.TrimSpace(extension)
	if extension == "" {
		return DefaultExtension
	}

	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return extension
}

// AcceptsClass reports whether submissions of class should be loaded.
func (f CorpusFilter) AcceptsClass(class m.ClassID) bool {
	if len(f.Classes) == 0 {
		return true
	}

	for _, c := range f.Classes {
		if c == class {
			return true
		}
	}

	return false
}

// AcceptsFile reports whether a file name is a submission, given its
// corpus-relative path (class/student/file).
func (f CorpusFilter) AcceptsFile(relPath string) bool {
	ext := f.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	name := path.Base(relPath)
	if strings.HasPrefix(name, ".") || path.Ext(name) != ext {
		return false
	}

	for _, re := range f.Exclude {
		if re.MatchString(relPath) {
			return false
		}
	}

	return true
}

// assignmentFromFile strips the extension from a submission file name.
func (f CorpusFilter) assignmentFromFile(name string) m.AssignmentID {
	return m.AssignmentID(strings.TrimSuffix(name, path.Ext(name)))
}

func newSubmission(filter CorpusFilter, class, student, file string, origin m.Path, src []byte) m.Submission {
	classID := m.ClassID(class)

	return m.Submission{
		Key: m.SubmissionKey{
			Student:    m.NewStudentID(classID, student),
			Assignment: filter.assignmentFromFile(file),
		},
		Class:  classID,
		Origin: origin,
		Source: src,
		Hash:   hashBytes(src),
	}
}

func hashBytes(src []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(src))
}

// CorpusRouter dispatches a root to the local or the object storage source.
// The remote source is created on first use so that local runs never need
// storage credentials.
type CorpusRouter struct {
	local     CorpusSource
	newRemote func() (CorpusSource, error)
	remote    CorpusSource
}

// NewCorpusRouter constructs a CorpusRouter.
func NewCorpusRouter(local CorpusSource, newRemote func() (CorpusSource, error)) *CorpusRouter {
	return &CorpusRouter{local: local, newRemote: newRemote}
}

// Load implements CorpusSource.
func (r *CorpusRouter) Load(ctx context.Context, root m.Path, filter CorpusFilter) ([]m.Submission, error) {
	if !IsRemoteRoot(root) {
		return r.local.Load(ctx, root, filter)
	}

	if r.remote == nil {
		if r.newRemote == nil {
			return nil, fmt.Errorf("object storage is not configured for %s", root)
		}

		remote, err := r.newRemote()
		if err != nil {
			return nil, fmt.Errorf("failed to create object storage source: %w", err)
		}

		r.remote = remote
	}

	return r.remote.Load(ctx, root, filter)
}

// IsRemoteRoot reports whether root addresses an S3-compatible bucket.
func IsRemoteRoot(root m.Path) bool {
	return strings.HasPrefix(string(root), S3Scheme)
}
