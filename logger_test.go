package corekit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, nil))
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	assert.Same(t, l, Logger())
	Logger().Info("hello")
	assert.Contains(t, out.String(), "msg=hello")
}

func TestSetLogger_NilIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
