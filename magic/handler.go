// Package magic dispatches magic command invocations: it substitutes
// template variables, routes the rendered query through the shared
// connection and places the result into the session namespace.
package magic

import (
	"context"
	"fmt"
	"strings"

	"github.com/dbmagic/dbmagic/adapters"
	"github.com/dbmagic/dbmagic/config"
	"github.com/dbmagic/dbmagic/core"
	"github.com/dbmagic/dbmagic/core/format"
	"github.com/dbmagic/dbmagic/output"
)

// Handler owns the session state: the namespace, the call log and the
// lazily created shared connection. All five failure kinds are caught
// at this boundary and rendered - none propagate to the host.
type Handler struct {
	namespace *core.Namespace
	display   *output.Display
	log       *output.Logger

	connect func() (*core.Connection, error)
	conn    *core.Connection

	calls []*core.Call
}

type Option func(*Handler)

// WithConnector overrides how the shared connection is established.
func WithConnector(connect func() (*core.Connection, error)) Option {
	return func(h *Handler) {
		h.connect = connect
	}
}

func New(namespace *core.Namespace, display *output.Display, logger *output.Logger, opts ...Option) *Handler {
	h := &Handler{
		namespace: namespace,
		display:   display,
		log:       logger,
		connect:   defaultConnector,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// defaultConnector resolves the configuration and opens the vendor
// client connection.
func defaultConnector() (*core.Connection, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conn, err := adapters.NewConnection(&core.ConnectionParams{
		Name: "databricks",
		Type: "databricks",
		URL:  cfg.DSN(),
	})
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	return conn, nil
}

// connection is the get-or-create accessor for the shared handle.
// At most one connection exists per process; a failed creation leaves
// the handle unset so the next invocation retries.
func (h *Handler) connection() (*core.Connection, error) {
	if h.conn != nil {
		return h.conn, nil
	}

	conn, err := h.connect()
	if err != nil {
		return nil, err
	}
	h.conn = conn

	return conn, nil
}

// ExecuteCell runs the cell form: an argument line and a multi-line
// query body.
func (h *Handler) ExecuteCell(argLine, cell string) {
	args, err := ParseArgs(argLine)
	if err != nil {
		h.display.Error(err)
		return
	}

	h.run(args, cell)
}

// ExecuteLine runs the single-line form. It supports assignment-style
// binding: 'variable = SELECT ...'.
func (h *Handler) ExecuteLine(line string) {
	args := &Args{TargetVariable: DefaultTargetVariable}

	query := line
	if variable, rest, ok := SplitAssignment(line); ok {
		args.TargetVariable = variable
		query = rest
	}

	h.run(args, query)
}

// run is the single synchronous round trip: substitute, connect,
// execute, bind, display. Every failure is terminal for this
// invocation and reported once.
func (h *Handler) run(args *Args, query string) {
	rendered, err := core.Substitute(strings.TrimSpace(query), h.namespace)
	if err != nil {
		h.display.Error(err)
		return
	}

	conn, err := h.connection()
	if err != nil {
		h.display.Error(err)
		return
	}

	call := conn.Execute(rendered)
	h.calls = append(h.calls, call)

	if err := call.Err(); err != nil {
		// target variable stays unbound
		h.log.Errorf("call %s failed: %s", call.GetID(), err)
		h.display.Error(&ExecutionError{Err: err})
		return
	}

	result, err := call.GetResult()
	if err != nil {
		h.display.Error(&ExecutionError{Err: err})
		return
	}

	h.namespace.Set(args.TargetVariable, result)
	h.log.Infof("call %s finished in %s (%d rows)", call.GetID(), call.GetTimeTaken(), result.Len())

	h.display.Completed(call.GetTimeTaken(), result.Len())
	if !args.NoDisplay && result.Len() > 0 {
		h.display.Preview(result)
	}
}

// ShowConfig reports the resolved configuration. With showAuth it also
// probes the connection. Read-only - never errors out of the session.
func (h *Handler) ShowConfig(showAuth bool) {
	cfg := config.Load()

	h.display.Infof("Current configuration:")
	h.display.Infof("  server_hostname: %s", orNotConfigured(cfg.ServerHostname))
	h.display.Infof("  http_path: %s", orNotConfigured(cfg.HTTPPath))
	if cfg.AccessToken != "" {
		// mask sensitive values
		h.display.Infof("  access_token: ***")
	}

	if !showAuth {
		return
	}

	conn, err := h.connection()
	if err != nil {
		h.display.Error(err)
		return
	}

	if err := conn.Ping(context.Background()); err != nil {
		h.display.Error(&AuthenticationError{Err: err})
		return
	}

	h.display.Infof("Authentication successful")
}

func orNotConfigured(value string) string {
	if value == "" {
		return "not configured"
	}
	return value
}

// Calls returns the call log of this session, oldest first.
func (h *Handler) Calls() []*core.Call {
	return h.calls
}

// ShowCalls renders the call log.
func (h *Handler) ShowCalls() {
	if len(h.calls) == 0 {
		h.display.Infof("no calls in this session")
		return
	}

	for _, call := range h.calls {
		h.display.Infof("%s  %-9s  %8.2fs  %s",
			call.GetTimestamp().Format("15:04:05"),
			call.GetState(),
			call.GetTimeTaken().Seconds(),
			call.GetQuery())
	}
}

// Export writes a bound result to a file in the requested format.
func (h *Handler) Export(variable, formatName, path string) {
	val, ok := h.namespace.Get(variable)
	if !ok {
		h.display.Error(&ArgumentError{Reason: fmt.Sprintf("variable %q is not bound", variable)})
		return
	}

	result, ok := val.(*core.Result)
	if !ok {
		h.display.Error(&ArgumentError{Reason: fmt.Sprintf("variable %q is not a query result", variable)})
		return
	}

	var formatter core.Formatter
	switch formatName {
	case "csv":
		formatter = format.NewCSV()
	case "json":
		formatter = format.NewJSON()
	case "table":
		formatter = format.NewTable()
	default:
		h.display.Error(&ArgumentError{Reason: fmt.Sprintf("format %q is not supported", formatName)})
		return
	}

	if err := output.NewFile(path, formatter).Write(result); err != nil {
		h.display.Error(err)
		return
	}

	h.display.Infof("wrote %d rows to %s", result.Len(), path)
}

// Close releases the shared connection. Called on host shutdown only;
// the handle otherwise lives for the whole process.
func (h *Handler) Close() {
	if h.conn != nil {
		h.conn.Close()
		h.conn = nil
	}
}
