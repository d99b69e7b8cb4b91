package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitTagged},
		{"not tagged", Exit(ExitNotTagged), ExitNotTagged},
		{"wrapped", fmt.Errorf("run: %w", Exit(ExitNotTagged)), ExitNotTagged},
		{"plain error", errors.New("accepts 1 arg(s), received 0"), ExitFailure},
		{"exit error with cause", &ExitError{Code: ExitFailure, Err: errors.New("boom")}, ExitFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Code(tc.err))
		})
	}
}

func TestReported(t *testing.T) {
	assert.True(t, Reported(Exit(ExitNotTagged)))
	assert.False(t, Reported(nil))
	assert.False(t, Reported(errors.New("usage")))

	cause := errors.New("boom")
	err := &ExitError{Code: ExitFailure, Err: cause}
	assert.False(t, Reported(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "exit status 1", Exit(ExitNotTagged).Error())
}
