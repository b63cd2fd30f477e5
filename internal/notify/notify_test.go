package notify

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSend_Success(t *testing.T) {
	r := NewRunner("true", zerolog.Nop())
	assert.NoError(t, r.Send(context.Background()))
}

func TestSend_Failure(t *testing.T) {
	r := NewRunner("echo delivery refused >&2; exit 3", zerolog.Nop())
	err := r.Send(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "delivery refused")
}

func TestSend_EmptyCommand(t *testing.T) {
	r := NewRunner("  ", zerolog.Nop())
	assert.Error(t, r.Send(context.Background()))
}
