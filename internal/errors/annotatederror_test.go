package errors

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := NewSentinel("test error")
	require.NotErrorIs(t, err, NewSentinel("test error"))
	wrapped := Wrap(sentinel, "wrapping", slog.String("id", "123"))
	require.ErrorIs(t, wrapped, sentinel)

	// Ensure log values are coming through.
	group := err.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	source := group[sourceIdx]
	require.Contains(t, source.Value.String(), "annotatederror_test.go")
}

func TestWrapKeepsAnnotations(t *testing.T) {
	sentinel := NewSentinel("pool empty")
	wrapped := Wrap(sentinel, "select solution", slog.String("category", "location"))

	var annotated AnnotatedError
	require.True(t, As(wrapped, &annotated))
	require.Contains(t, annotated.LogValue().Group(), slog.String("category", "location"))
	require.Contains(t, wrapped.Error(), "pool empty")
}
