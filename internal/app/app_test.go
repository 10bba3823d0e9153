package app

import (
	"context"
	"errors"
	"testing"

	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownSequence_ServerDrainsBeforeBackendsClose(t *testing.T) {
	var order []string

	stop := func(ctx context.Context) error {
		order = append(order, "server")
		return nil
	}
	closers := []closer{
		{"mongodb", func() error { order = append(order, "mongodb"); return nil }},
		{"redis", func() error { order = append(order, "redis"); return nil }},
	}

	err := shutdownSequence(context.Background(), logger.New(), stop, closers)

	assert.NoError(t, err)
	assert.Equal(t, []string{"server", "mongodb", "redis"}, order)
}

func TestShutdownSequence_StopErrorKeepsBackendsOpen(t *testing.T) {
	var closed bool

	stop := func(ctx context.Context) error {
		return errors.New("drain timed out")
	}
	closers := []closer{
		{"mongodb", func() error { closed = true; return nil }},
	}

	err := shutdownSequence(context.Background(), logger.New(), stop, closers)

	assert.Error(t, err)
	assert.False(t, closed)
}

func TestShutdownSequence_CloserErrorDoesNotAbort(t *testing.T) {
	var order []string

	stop := func(ctx context.Context) error { return nil }
	closers := []closer{
		{"mongodb", func() error { order = append(order, "mongodb"); return errors.New("already closed") }},
		{"redis", func() error { order = append(order, "redis"); return nil }},
	}

	err := shutdownSequence(context.Background(), logger.New(), stop, closers)

	assert.NoError(t, err)
	assert.Equal(t, []string{"mongodb", "redis"}, order)
}
