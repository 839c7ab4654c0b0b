package cmdtypes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/magicappdev/cli/internal/errors"
)

func TestExitErrorFrom(t *testing.T) {
	assert.NoError(t, ExitErrorFrom(nil))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("lookup: %w", oerrors.ErrNotFound), ExitNotFound},
		{"connectivity", oerrors.NewConnectivityError("timeout", nil, ""), ExitConnectivityError},
		{"plain", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ExitErrorFrom(tt.err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.want, exitErr.Code)
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, exitErr.Printed)
		})
	}

	t.Run("existing exit error is kept", func(t *testing.T) {
		orig := &ExitError{Code: ExitConflict, Err: oerrors.ErrConflict, Printed: true}
		assert.Same(t, orig, ExitErrorFrom(orig))
	})
}
