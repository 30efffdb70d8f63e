package mock

type adapterConfig struct {
	connectError error
	pingError    error
	queryErrors  map[string]error
}

type AdapterOption func(*adapterConfig)

// WithConnectError makes the adapter fail to connect.
func WithConnectError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.connectError = err
	}
}

// WithPingError makes the driver's connection probe fail.
func WithPingError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.pingError = err
	}
}

// WithQueryError makes the driver fail for a specific query.
func WithQueryError(query string, err error) AdapterOption {
	return func(c *adapterConfig) {
		c.queryErrors[query] = err
	}
}
