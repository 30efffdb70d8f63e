package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbmagic/dbmagic/core"
	"github.com/dbmagic/dbmagic/core/mock"
)

func newTestConnection(t *testing.T, adapter core.Adapter) *core.Connection {
	t.Helper()

	conn, err := core.NewConnection(&core.ConnectionParams{
		Name: "test",
		Type: "mock",
		URL:  "mock://",
	}, adapter)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	return conn
}

func TestConnection_Execute(t *testing.T) {
	adapter := mock.NewAdapter(core.Header{"id", "name"}, []core.Row{
		{1, "first"},
		{2, "second"},
	})
	conn := newTestConnection(t, adapter)

	call := conn.Execute("SELECT * FROM users")

	assert.Equal(t, core.CallStateSucceeded, call.GetState())
	assert.NoError(t, call.Err())
	assert.Equal(t, "SELECT * FROM users", call.GetQuery())
	assert.NotEmpty(t, call.GetID())
	assert.False(t, call.GetTimestamp().IsZero())

	result, err := call.GetResult()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, core.Header{"id", "name"}, result.Header())
}

func TestConnection_Execute_Failure(t *testing.T) {
	queryErr := errors.New("table not found")
	adapter := mock.NewAdapter(core.Header{"id"}, nil,
		mock.WithQueryError("SELECT * FROM nope", queryErr))
	conn := newTestConnection(t, adapter)

	call := conn.Execute("SELECT * FROM nope")

	assert.Equal(t, core.CallStateFailed, call.GetState())
	assert.ErrorIs(t, call.Err(), queryErr)

	_, err := call.GetResult()
	assert.Error(t, err)
}

func TestConnection_Ping(t *testing.T) {
	t.Run("supported and healthy", func(t *testing.T) {
		conn := newTestConnection(t, mock.NewAdapter(core.Header{"n"}, nil))
		assert.NoError(t, conn.Ping(context.Background()))
	})

	t.Run("probe failure", func(t *testing.T) {
		pingErr := errors.New("unauthorized")
		conn := newTestConnection(t, mock.NewAdapter(core.Header{"n"}, nil,
			mock.WithPingError(pingErr)))

		assert.ErrorIs(t, conn.Ping(context.Background()), pingErr)
	})
}

func TestNewConnection_AdapterFailure(t *testing.T) {
	connectErr := errors.New("refused")
	adapter := mock.NewAdapter(nil, nil, mock.WithConnectError(connectErr))

	_, err := core.NewConnection(&core.ConnectionParams{Type: "mock"}, adapter)

	assert.ErrorIs(t, err, connectErr)
}

func TestCallState_String(t *testing.T) {
	assert.Equal(t, "succeeded", core.CallStateSucceeded.String())
	assert.Equal(t, "failed", core.CallStateFailed.String())
	assert.Equal(t, "unknown", core.CallStateUnknown.String())
}
