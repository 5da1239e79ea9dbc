package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("not-a-level", &buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = New("", &buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
