package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type stubInvites struct {
	ids      []string
	filename string
	ics      []byte
	err      error
	closed   bool
}

func (s *stubInvites) Generate(_ context.Context, id string) (string, error) {
	s.ids = append(s.ids, id)
	return s.filename, s.err
}

func (s *stubInvites) Render(_ context.Context, id string) ([]byte, error) {
	s.ids = append(s.ids, id)
	return s.ics, s.err
}

func (s *stubInvites) Close() error {
	s.closed = true
	return nil
}

func runApp(t *testing.T, stub *stubInvites, args ...string) (string, error) {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	a := newApp(func() (inviteRunner, logger.Logger, error) {
		return stub, log, nil
	})
	var out bytes.Buffer
	a.Writer = &out
	a.ErrWriter = io.Discard

	err = a.Run(append([]string{"invitectl"}, args...))
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	stub := &stubInvites{filename: "reservation_42_1741600000000.ics"}

	out, err := runApp(t, stub, "generate", "--id", "42")

	require.NoError(t, err)
	assert.Equal(t, "reservation_42_1741600000000.ics\n", out)
	assert.Equal(t, []string{"42"}, stub.ids)
	assert.True(t, stub.closed)
}

func TestGenerateCommand_Error(t *testing.T) {
	stub := &stubInvites{err: domain.ErrReservationCancelled}

	out, err := runApp(t, stub, "generate", "--id", "42")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationCancelled)
	assert.Empty(t, out)
	assert.True(t, stub.closed)
}

func TestRenderCommand(t *testing.T) {
	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	stub := &stubInvites{ics: ics}

	out, err := runApp(t, stub, "render", "--id", "42")

	require.NoError(t, err)
	assert.Equal(t, string(ics), out)
	assert.Equal(t, []string{"42"}, stub.ids)
	assert.True(t, stub.closed)
}

func TestRenderCommand_NotFound(t *testing.T) {
	stub := &stubInvites{err: domain.ErrReservationNotFound}

	_, err := runApp(t, stub, "render", "--id", "missing")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestCommands_RequireID(t *testing.T) {
	for _, cmd := range []string{"generate", "render"} {
		stub := &stubInvites{}

		_, err := runApp(t, stub, cmd)

		assert.Error(t, err, cmd)
		assert.Empty(t, stub.ids, cmd)
	}
}

func TestCommands_OpenError(t *testing.T) {
	a := newApp(func() (inviteRunner, logger.Logger, error) {
		return nil, nil, errors.New("db unreachable")
	})
	a.Writer = io.Discard
	a.ErrWriter = io.Discard

	err := a.Run([]string{"invitectl", "generate", "--id", "42"})

	assert.EqualError(t, err, "db unreachable")
}
