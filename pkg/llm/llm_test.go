package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatFunc func(ctx context.Context, system, user string) (string, error)

func (f chatFunc) Ask(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

func TestOverviewCollapsesWhitespace(t *testing.T) {
	var sent string
	s := NewSummarizer(chatFunc(func(_ context.Context, system, user string) (string, error) {
		assert.Contains(t, system, "overview")
		sent = user
		return "  Senior Go engineer.\n\n Strong in SQL. ", nil
	}))
	got, err := s.Overview(context.Background(), strings.Repeat("я", maxInputRunes+10))
	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer. Strong in SQL.", got)
	assert.Equal(t, maxInputRunes, utf8.RuneCountInString(sent))
}

func TestOverviewErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewSummarizer(chatFunc(func(context.Context, string, string) (string, error) { return "", boom })).
		Overview(context.Background(), "cv")
	assert.ErrorIs(t, err, boom)

	_, err = NewSummarizer(chatFunc(func(context.Context, string, string) (string, error) { return " \n", nil })).
		Overview(context.Background(), "cv")
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}
