package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrPingNotSupported = errors.New("connection probing not supported")

type ConnectionID string

type ConnectionParams struct {
	ID   ConnectionID
	Name string
	Type string
	URL  string
}

// Connection ties an established driver to its parameters.
type Connection struct {
	params *ConnectionParams
	driver Driver
}

func NewConnection(params *ConnectionParams, adapter Adapter) (*Connection, error) {
	if params.ID == "" {
		params.ID = ConnectionID(uuid.New().String())
	}

	driver, err := adapter.Connect(params.URL)
	if err != nil {
		return nil, fmt.Errorf("adapter.Connect: %w", err)
	}

	return &Connection{
		params: params,
		driver: driver,
	}, nil
}

func (c *Connection) GetID() ConnectionID {
	return c.params.ID
}

func (c *Connection) GetName() string {
	return c.params.Name
}

func (c *Connection) GetType() string {
	return c.params.Type
}

// Execute runs the query on the underlying driver and returns the
// finished call. Errors are recorded on the call, not returned.
func (c *Connection) Execute(query string) *Call {
	exec := func(ctx context.Context) (ResultStream, error) {
		return c.driver.Query(ctx, query)
	}

	return newCallFromExecutor(exec, query)
}

// Ping probes the connection if the driver supports it.
func (c *Connection) Ping(ctx context.Context) error {
	pinger, ok := c.driver.(Pinger)
	if !ok {
		return ErrPingNotSupported
	}

	if err := pinger.Ping(ctx); err != nil {
		return fmt.Errorf("pinger.Ping: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	c.driver.Close()
}
