package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "mindmesh-backend/pkg/errors"
)

type fakeCommand struct {
	invalid bool
}

func (c fakeCommand) Validate() error {
	if c.invalid {
		return pkgerrors.NewValidationError("fake command is invalid")
	}
	return nil
}

func TestSend_DispatchesToRegisteredHandler(t *testing.T) {
	commandBus := NewCommandBus()

	called := false
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	})
	require.NoError(t, commandBus.Register(fakeCommand{}, handler))

	require.NoError(t, commandBus.Send(context.Background(), fakeCommand{}))
	assert.True(t, called)
}

func TestSend_UnregisteredCommandFails(t *testing.T) {
	commandBus := NewCommandBus()

	err := commandBus.Send(context.Background(), fakeCommand{})
	assert.Error(t, err)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	commandBus := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, commandBus.Register(fakeCommand{}, handler))
	assert.Error(t, commandBus.Register(fakeCommand{}, handler))
}

func TestValidationMiddleware_BlocksInvalidCommands(t *testing.T) {
	commandBus := NewCommandBus()

	handlerRan := false
	handler := ValidationMiddleware()(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handlerRan = true
		return nil
	}))
	require.NoError(t, commandBus.Register(fakeCommand{}, handler))

	err := commandBus.Send(context.Background(), fakeCommand{invalid: true})

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.True(t, pkgerrors.IsValidation(err), "validation errors keep their type through wrapping")
}

func TestValidationMiddleware_PassesValidCommands(t *testing.T) {
	commandBus := NewCommandBus()

	handlerRan := false
	handler := ValidationMiddleware()(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handlerRan = true
		return nil
	}))
	require.NoError(t, commandBus.Register(fakeCommand{}, handler))

	require.NoError(t, commandBus.Send(context.Background(), fakeCommand{}))
	assert.True(t, handlerRan)
}
