package domain

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mouse-blink/twins/internal/adapter"
	m "github.com/mouse-blink/twins/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	srcLoop    = "for i in range(3):\n    print(i)\n"
	srcFunc    = "def f(x):\n    return x\n"
	srcBranch  = "if x:\n    y = 1\n"
	srcBroken  = "def f(:\n"
	srcNothing = "pass\n"
)

// countingExtractor records how often each source file is extracted.
type countingExtractor struct {
	Extractor

	mu    sync.Mutex
	calls map[m.Path]int
}

func newCountingExtractor() *countingExtractor {
	return &countingExtractor{
		Extractor: NewExtractor(adapter.NewLocalPythonAdapter()),
		calls:     map[m.Path]int{},
	}
}

func (e *countingExtractor) Extract(submission *m.Submission) (m.TokenSequence, error) {
	e.mu.Lock()
	e.calls[submission.Origin]++
	e.mu.Unlock()

	return e.Extractor.Extract(submission)
}

func TestGrouper_ExcludesMalformed(t *testing.T) {
	corpus := []m.Submission{
		testSubmission("7A ivan", "q1", srcLoop),
		testSubmission("7A olga", "q1", srcFunc),
		testSubmission("7B anna", "q1", srcBroken),
		testSubmission("7B petr", "q1", srcBranch),
		testSubmission("7B roma", "q1", srcLoop),
	}

	grouper := NewGrouper(NewExtractor(adapter.NewLocalPythonAdapter()), 3)

	result, err := grouper.Group(context.Background(), corpus)
	require.NoError(t, err)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, []m.StudentID{"7A ivan", "7A olga", "7B petr", "7B roma"}, result.Groups[0].Students())
	assert.Equal(t, 4, result.Submissions())

	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, m.StudentID("7B anna"), result.ParseErrors[0].Key.Student)

	diagnostics := result.Diagnostics()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, m.DiagnosticParseError, diagnostics[0].Kind)
	assert.Equal(t, m.AssignmentID("q1"), diagnostics[0].Assignment)

	for _, sub := range result.Groups[0].Submissions {
		assert.NotNil(t, sub.Tokens, "tokens of %s", sub.Key)
	}
}

func TestGrouper_AssignmentOrder(t *testing.T) {
	corpus := []m.Submission{
		testSubmission("7A ivan", "q2", srcLoop),
		testSubmission("7A ivan", "q1", srcFunc),
		testSubmission("7A olga", "q1", srcFunc),
		testSubmission("7A olga", "q2", srcBranch),
		testSubmission("7A olga", "q3", srcBroken),
	}

	result, err := NewGrouper(NewExtractor(adapter.NewLocalPythonAdapter()), 1).Group(context.Background(), corpus)
	require.NoError(t, err)

	require.Len(t, result.Groups, 3)
	assert.Equal(t, m.AssignmentID("q2"), result.Groups[0].Assignment)
	assert.Equal(t, m.AssignmentID("q1"), result.Groups[1].Assignment)

	// q3 only had a malformed submission; it is kept as an empty group.
	assert.Equal(t, m.AssignmentID("q3"), result.Groups[2].Assignment)
	assert.Empty(t, result.Groups[2].Submissions)
}

func TestGrouper_DuplicateKeepsLastAtFirstPosition(t *testing.T) {
	first := testSubmission("7A ivan", "q1", srcFunc)
	first.Origin = "old/q1.py"

	last := testSubmission("7A ivan", "q1", srcNothing)
	last.Origin = "new/q1.py"

	corpus := []m.Submission{first, testSubmission("7A olga", "q1", srcFunc), last}

	result, err := NewGrouper(NewExtractor(adapter.NewLocalPythonAdapter()), 2).Group(context.Background(), corpus)
	require.NoError(t, err)

	require.Len(t, result.Groups, 1)

	subs := result.Groups[0].Submissions
	require.Len(t, subs, 2)
	assert.Equal(t, m.StudentID("7A ivan"), subs[0].Key.Student)
	assert.Equal(t, m.Path("new/q1.py"), subs[0].Origin)
	assert.Equal(t, m.TokenSequence{}, subs[0].Tokens)

	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, m.Path("old/q1.py"), result.Duplicates[0].Superseded)
	assert.Equal(t, m.Path("new/q1.py"), result.Duplicates[0].Kept)
	assert.Equal(t, m.DiagnosticDuplicate, result.Diagnostics()[0].Kind)
}

func TestGrouper_ExtractsEachSubmissionOnce(t *testing.T) {
	superseded := testSubmission("7A ivan", "q1", srcLoop)
	superseded.Origin = "old/q1.py"

	kept := testSubmission("7A ivan", "q1", srcFunc)
	kept.Origin = "new/q1.py"

	corpus := []m.Submission{
		superseded,
		testSubmission("7A olga", "q1", srcFunc),
		testSubmission("7B petr", "q1", srcBroken),
		testSubmission("7A olga", "q2", srcBranch),
		kept,
	}

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			extractor := newCountingExtractor()

			result, err := NewGrouper(extractor, workers).Group(context.Background(), corpus)
			require.NoError(t, err)

			assert.Equal(t, map[m.Path]int{
				"new/q1.py":     1,
				"7A olga/q1.py": 1,
				"7B petr/q1.py": 1,
				"7A olga/q2.py": 1,
			}, extractor.calls)
			assert.Zero(t, extractor.calls["old/q1.py"])

			require.Len(t, result.Groups, 2)
			assert.Equal(t, []m.StudentID{"7A ivan", "7A olga"}, result.Groups[0].Students())
			assert.Len(t, result.ParseErrors, 1)
			assert.Len(t, result.Duplicates, 1)
		})
	}
}

func TestGrouper_LeavesInputUntouched(t *testing.T) {
	corpus := []m.Submission{testSubmission("7A ivan", "q1", srcFunc)}

	_, err := NewGrouper(NewExtractor(adapter.NewLocalPythonAdapter()), 0).Group(context.Background(), corpus)
	require.NoError(t, err)

	assert.Nil(t, corpus[0].Tokens)
}

func TestGrouper_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	corpus := []m.Submission{testSubmission("7A ivan", "q1", srcFunc)}

	_, err := NewGrouper(NewExtractor(adapter.NewLocalPythonAdapter()), 1).Group(ctx, corpus)
	require.ErrorIs(t, err, context.Canceled)
}
