package core

import "context"

type (
	// Row and Header are attributes of the ResultStream iterator
	Row    []any
	Header []string

	// ResultStream is a result from an executed query and has a form of an iterator
	ResultStream interface {
		Header() Header
		Next() (Row, error)
		HasNext() bool
		Close()
	}

	// Formatter converts header and rows to bytes
	Formatter interface {
		Format(header Header, rows []Row) ([]byte, error)
	}
)

type (
	// Adapter is an object which allows to connect to a database via url
	Adapter interface {
		Connect(url string) (Driver, error)
	}

	// Driver is an interface for a specific database driver
	Driver interface {
		Query(context.Context, string) (ResultStream, error)
		Close()
	}

	// Pinger is an optional interface for drivers that can probe
	// their connection without issuing a user query.
	Pinger interface {
		Ping(context.Context) error
	}
)
