package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Ask_ReadsLinesInOrder(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("acme\nwidgets\r\nmain"), &out)
	ctx := context.Background()

	first, err := p.Ask(ctx, "Owner:")
	require.NoError(t, err)
	second, err := p.Ask(ctx, "Repo:")
	require.NoError(t, err)
	third, err := p.Ask(ctx, "Branch:")
	require.NoError(t, err)

	assert.Equal(t, []string{"acme", "widgets", "main"}, []string{first, second, third})
	assert.Equal(t, "Owner: Repo: Branch: ", out.String())
}

func TestPrompter_Ask_KeepsSurroundingSpaces(t *testing.T) {
	p := NewPrompter(strings.NewReader("  acme  \n"), io.Discard)

	got, err := p.Ask(context.Background(), "Owner:")
	require.NoError(t, err)
	assert.Equal(t, "  acme  ", got)
}

func TestPrompter_Ask_EmptyLine(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), io.Discard)

	got, err := p.Ask(context.Background(), "Owner:")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrompter_Ask_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)

	_, err := p.Ask(context.Background(), "Owner:")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Ask_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	p := NewPrompter(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Ask(ctx, "Owner:")
	assert.ErrorIs(t, err, context.Canceled)
}
