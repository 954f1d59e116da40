package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-planner/internal/errors"
)

type stubCommand struct {
	label string
	calls int
}

func (s *stubCommand) Label() string { return s.label }

func (s *stubCommand) Execute(ctx context.Context) error {
	s.calls++
	return nil
}

func TestNewCommandRegistry(t *testing.T) {
	app := NewApp(setupTestPlanner(t), testConfig(), strings.NewReader(""), &bytes.Buffer{})
	registry := NewCommandRegistry(app)

	for _, key := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		assert.True(t, registry.Has(key), "key %s should be registered", key)
	}
	assert.False(t, registry.Has("0"))
	assert.False(t, registry.Has("9"))

	menu := registry.Menu()
	lines := strings.Split(strings.TrimSpace(menu), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Choose an action:", lines[0])
	assert.Equal(t, "1. Register member", lines[1])
	assert.Equal(t, "8. Show projects and tasks", lines[8])
	assert.Equal(t, "0. Exit", lines[9])
}

func TestCommandRegistry_RegisterAndExecute(t *testing.T) {
	registry := &CommandRegistry{commands: make(map[string]MenuCommand)}
	first := &stubCommand{label: "First"}
	second := &stubCommand{label: "Second"}

	registry.Register("a", first)
	registry.Register("b", second)

	t.Run("executes registered command", func(t *testing.T) {
		require.NoError(t, registry.Execute(context.Background(), "b"))
		assert.Equal(t, 1, second.calls)
		assert.Equal(t, 0, first.calls)
	})

	t.Run("unknown key is invalid input", func(t *testing.T) {
		err := registry.Execute(context.Background(), "z")
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	})

	t.Run("re-registering keeps menu position", func(t *testing.T) {
		replacement := &stubCommand{label: "Replacement"}
		registry.Register("a", replacement)

		menu := registry.Menu()
		assert.Less(t, strings.Index(menu, "a. Replacement"), strings.Index(menu, "b. Second"))
		assert.NotContains(t, menu, "First")
	})
}
