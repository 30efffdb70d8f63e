package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	CallID string

	// Call is a single executed statement together with its outcome.
	// Execution is synchronous - the host issues one invocation at a
	// time and waits for it to finish.
	Call struct {
		id        CallID
		query     string
		state     CallState
		timeTaken time.Duration
		timestamp time.Time

		result *Result

		// any error that occurred during execution
		err error
	}
)

type CallState int

const (
	CallStateUnknown CallState = iota
	CallStateSucceeded
	CallStateFailed
)

func (s CallState) String() string {
	switch s {
	case CallStateSucceeded:
		return "succeeded"
	case CallStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// newCallFromExecutor runs the executor to completion, draining the
// returned stream into the call's result and measuring elapsed wall-clock time.
func newCallFromExecutor(executor func(context.Context) (ResultStream, error), query string) *Call {
	c := &Call{
		id:        CallID(uuid.New().String()),
		query:     query,
		state:     CallStateUnknown,
		timestamp: time.Now(),

		result: new(Result),
	}

	iter, err := executor(context.Background())
	if err != nil {
		c.finish(err)
		return c
	}

	c.finish(c.result.SetIter(iter))

	return c
}

func (c *Call) finish(err error) {
	c.timeTaken = time.Since(c.timestamp)
	if err != nil {
		c.err = err
		c.state = CallStateFailed
		return
	}
	c.state = CallStateSucceeded
}

func (c *Call) GetID() CallID {
	return c.id
}

func (c *Call) GetQuery() string {
	return c.query
}

func (c *Call) GetState() CallState {
	return c.state
}

func (c *Call) GetTimeTaken() time.Duration {
	return c.timeTaken
}

func (c *Call) GetTimestamp() time.Time {
	return c.timestamp
}

func (c *Call) Err() error {
	return c.err
}

func (c *Call) GetResult() (*Result, error) {
	if c.err != nil {
		return nil, fmt.Errorf("call failed: %w", c.err)
	}
	if c.result.IsEmpty() {
		return nil, fmt.Errorf("call has no result")
	}

	return c.result, nil
}
