package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMenu struct {
	calls []string
	err   error
}

func (s *stubMenu) showMenu(context.Context) { s.calls = append(s.calls, "menu") }

func (s *stubMenu) Dashboard(context.Context) error {
	s.calls = append(s.calls, "dashboard")
	return s.err
}

func (s *stubMenu) Clients(context.Context) error {
	s.calls = append(s.calls, "clients")
	return s.err
}

func (s *stubMenu) Projects(context.Context) error {
	s.calls = append(s.calls, "projects")
	return s.err
}

func (s *stubMenu) Reports(context.Context) error {
	s.calls = append(s.calls, "reports")
	return s.err
}

func TestRunMainMenu_Dispatch(t *testing.T) {
	m := &stubMenu{}
	var out bytes.Buffer

	err := runMainMenu(context.Background(), m, rdr("1\n\n2\n\n3\n\n4\n\nx\n\n5\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"menu", "dashboard",
		"menu", "clients",
		"menu", "projects",
		"menu", "reports",
		"menu",
		"menu",
	}, m.calls)

	s := out.String()
	assert.Equal(t, 5, strings.Count(s, "Pressione Enter para continuar..."))
	assert.Contains(t, s, "❌ Opção inválida!")
	assert.Contains(t, s, "👋 Obrigado por usar o Sistema Janol.Inej!")
}

func TestRunMainMenu_EOF(t *testing.T) {
	m := &stubMenu{}
	err := runMainMenu(context.Background(), m, rdr("1\n"), io.Discard)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"menu", "dashboard"}, m.calls)
}

func TestRunMainMenu_ScreenError(t *testing.T) {
	m := &stubMenu{err: errors.New("input gone")}
	err := runMainMenu(context.Background(), m, rdr("4\n\n5\n"), io.Discard)
	require.EqualError(t, err, "input gone")
}

func TestRunMainMenu_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &stubMenu{}
	err := runMainMenu(ctx, m, rdr("5\n"), io.Discard)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.calls)
}
