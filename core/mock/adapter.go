package mock

import (
	"context"

	"github.com/dbmagic/dbmagic/core"
	"github.com/dbmagic/dbmagic/core/builders"
)

var (
	_ core.Driver = (*driver)(nil)
	_ core.Pinger = (*driver)(nil)
)

type driver struct {
	header core.Header
	data   []core.Row
	config *adapterConfig
}

func (d *driver) Query(_ context.Context, query string) (core.ResultStream, error) {
	if err, ok := d.config.queryErrors[query]; ok {
		return nil, err
	}

	stream := builders.NewResultBuilder().
		WithNextFunc(builders.NextRows(d.data)).
		WithHeader(d.header).
		Build()

	return stream, nil
}

func (d *driver) Ping(context.Context) error {
	return d.config.pingError
}

func (d *driver) Close() {}

var _ core.Adapter = (*Adapter)(nil)

// Adapter is a driver mock for tests of everything above the driver layer.
type Adapter struct {
	header core.Header
	data   []core.Row
	config *adapterConfig
}

func NewAdapter(header core.Header, data []core.Row, opts ...AdapterOption) *Adapter {
	config := &adapterConfig{
		queryErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Adapter{
		header: header,
		data:   data,
		config: config,
	}
}

func (a *Adapter) Connect(_ string) (core.Driver, error) {
	if a.config.connectError != nil {
		return nil, a.config.connectError
	}

	return &driver{
		header: a.header,
		data:   a.data,
		config: a.config,
	}, nil
}
