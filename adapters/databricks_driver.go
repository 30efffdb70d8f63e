package adapters

import (
	"context"
	"strings"

	"github.com/dbmagic/dbmagic/core"
	"github.com/dbmagic/dbmagic/core/builders"
)

var (
	_ core.Driver = (*databricksDriver)(nil)
	_ core.Pinger = (*databricksDriver)(nil)
)

// databricksDriver is a driver for Databricks.
type databricksDriver struct {
	// c is the client used to execute queries.
	c *builders.Client
}

// Query executes the given query and returns the result stream.
// Plain DML statements go through Exec so the affected row count
// comes back as the result.
func (d *databricksDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	action := strings.ToLower(strings.Split(strings.TrimSpace(query), " ")[0])
	hasReturnValues := strings.Contains(strings.ToLower(query), " returning ")

	if (action == "update" || action == "delete" || action == "insert") && !hasReturnValues {
		return d.c.Exec(ctx, query)
	}

	return d.c.Query(ctx, query)
}

// Ping probes the warehouse without issuing a user query.
func (d *databricksDriver) Ping(ctx context.Context) error {
	return d.c.Ping(ctx)
}

// Close closes the connection to the database.
func (d *databricksDriver) Close() {
	d.c.Close()
}
