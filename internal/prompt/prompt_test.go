package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []string{"accordion", "alert", "alert-dialog", "aspect-ratio", "avatar"}

func TestStatic(t *testing.T) {
	got, err := Static{Selected: []string{"button", "not-in-catalog"}}.MultiSelect(context.Background(), "t", catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"button", "not-in-catalog"}, got)

	got, err = Static{}.MultiSelect(context.Background(), "t", catalog)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	boom := errors.New("boom")
	_, err = Static{Err: boom}.MultiSelect(context.Background(), "t", catalog)
	assert.ErrorIs(t, err, boom)
}

func TestLinesSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"numbers", "1 3\n", []string{"accordion", "alert-dialog"}},
		{"names and commas", "avatar, alert\n", []string{"alert", "avatar"}},
		{"mixed duplicates", "2,alert 2\n", []string{"alert"}},
		{"blank", "\n", []string{}},
		{"no trailing newline", "5", []string{"avatar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Lines{In: strings.NewReader(tt.input), Out: &out}.MultiSelect(context.Background(), "Which components would you like to add?", catalog)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Which components would you like to add?")
			assert.Contains(t, out.String(), "  3) alert-dialog")
		})
	}
}

func TestLinesRejectsUnknown(t *testing.T) {
	_, err := Lines{In: strings.NewReader("9\n")}.MultiSelect(context.Background(), "t", catalog)
	assert.ErrorContains(t, err, "out of range")

	_, err = Lines{In: strings.NewReader("carousel\n")}.MultiSelect(context.Background(), "t", catalog)
	assert.ErrorContains(t, err, `unknown choice "carousel"`)
}

func TestLinesEOFIsCancel(t *testing.T) {
	_, err := Lines{In: strings.NewReader("")}.MultiSelect(context.Background(), "t", catalog)
	assert.ErrorIs(t, err, ErrCancelled)

	_, err = Lines{}.MultiSelect(context.Background(), "t", catalog)
	assert.ErrorIs(t, err, ErrCancelled)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m checklistModel, msgs ...tea.Msg) checklistModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(checklistModel)
		require.True(t, ok)
	}
	return m
}

func TestChecklistToggleAndSubmit(t *testing.T) {
	m := newChecklistModel("Which components would you like to add?", catalog)

	m = update(t, m,
		runeKey(" "),                  // accordion
		tea.KeyMsg{Type: tea.KeyDown}, // alert
		runeKey("j"),                  // alert-dialog
		runeKey("x"),                  // toggle alert-dialog
		tea.KeyMsg{Type: tea.KeyUp},   // alert
		runeKey("k"),                  // accordion
		runeKey("k"),                  // wraps to avatar
		runeKey(" "),                  // toggle avatar
	)
	assert.Equal(t, []string{"accordion", "alert-dialog", "avatar"}, m.selected())

	view := m.View()
	assert.Contains(t, view, "Which components would you like to add?")
	assert.Contains(t, view, "aspect-ratio")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(checklistModel)
	assert.True(t, m.submitted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestChecklistToggleAll(t *testing.T) {
	m := newChecklistModel("t", catalog)

	m = update(t, m, runeKey("a"))
	assert.Equal(t, catalog, m.selected())

	m = update(t, m, runeKey("a"))
	assert.Empty(t, m.selected())
}

func TestChecklistSubmitNothing(t *testing.T) {
	m := update(t, newChecklistModel("t", catalog), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.submitted)
	assert.NotNil(t, m.selected())
	assert.Empty(t, m.selected())
}

func TestChecklistCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := update(t, newChecklistModel("t", catalog), msg)
		assert.True(t, m.cancelled)
		assert.False(t, m.submitted)
		assert.Empty(t, m.View())
	}
}

func TestChecklistEmptyChoices(t *testing.T) {
	m := update(t, newChecklistModel("t", nil), runeKey(" "), runeKey("j"), runeKey("k"))
	assert.Empty(t, m.selected())
}

func TestAutoUsesLinesWhenInputIsNotATerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, os.WriteFile(path, []byte("2 avatar\n"), 0644))
	in, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })

	var out bytes.Buffer
	got, err := Auto{In: in, Out: &out}.MultiSelect(context.Background(), "Which components would you like to add?", catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"alert", "avatar"}, got)
	assert.Contains(t, out.String(), "  1) accordion")
}

func TestAutoWithoutInputCancels(t *testing.T) {
	_, err := Auto{Out: io.Discard}.MultiSelect(context.Background(), "t", catalog)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestReadLineStopsAtNewline(t *testing.T) {
	in := strings.NewReader("1 3\nleft for the next reader")

	line, err := readLine(in)
	require.NoError(t, err)
	assert.Equal(t, "1 3\n", line)

	rest, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "left for the next reader", string(rest))
}

func TestChecklistProgramSubmit(t *testing.T) {
	got, err := Checklist{In: strings.NewReader(" \r"), Out: io.Discard}.MultiSelect(context.Background(), "t", catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"accordion"}, got)
}

func TestChecklistProgramCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Checklist{In: strings.NewReader(""), Out: io.Discard}.MultiSelect(ctx, "t", catalog)
	assert.ErrorIs(t, err, ErrCancelled)
}
