package cmd

import (
	"testing"

	"github.com/mouse-blink/twins/internal/domain"
	m "github.com/mouse-blink/twins/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCmd_DefaultRoot(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == m.Path(defaultRoot) && args.Workers >= 1
	})).Return(nil)

	cmd := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == m.Path("./solutions-2024") &&
			args.Workers == 2 &&
			len(args.Filter.Exclude) == 2 &&
			!args.Filter.AcceptsFile("7A/ivan/draft_q1.py") &&
			args.Filter.AcceptsFile("7A/ivan/q1.py")
	})).Return(nil)

	cmd := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list", "-x", "draft", "-x", "^tmp/", "-w", "2", "./solutions-2024"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [root]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, listLongDescription, cmd.Long)

	for _, name := range []string{"exclude", "class", "ext", "workers"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}
}
