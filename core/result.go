package core

import "fmt"

var ErrInvalidRange = func(from, to int) error { return fmt.Errorf("invalid selection range: %d ... %d", from, to) }

// Result is the cached form of the ResultStream iterator.
type Result struct {
	header Header
	rows   []Row

	isFilled bool
}

// SetIter drains the ResultStream iterator into the result.
// This can be done only once!
func (r *Result) SetIter(iter ResultStream) error {
	// close iterator on return
	defer iter.Close()

	r.header = iter.Header()
	r.rows = make([]Row, 0)
	r.isFilled = true

	for iter.HasNext() {
		row, err := iter.Next()
		if err != nil {
			r.isFilled = false
			return err
		}

		r.rows = append(r.rows, row)
	}

	return nil
}

func (r *Result) Len() int {
	return len(r.rows)
}

func (r *Result) IsEmpty() bool {
	return !r.isFilled
}

func (r *Result) Header() Header {
	return r.header
}

// Rows returns the [from, to) row range, with to clamped to the
// number of rows.
func (r *Result) Rows(from, to int) ([]Row, error) {
	if from < 0 || to < from {
		return nil, ErrInvalidRange(from, to)
	}

	length := len(r.rows)
	if from > length {
		from = length
	}
	if to > length {
		to = length
	}

	return r.rows[from:to], nil
}

// Format renders the given row range with the provided formatter.
func (r *Result) Format(formatter Formatter, from, to int) ([]byte, error) {
	rows, err := r.Rows(from, to)
	if err != nil {
		return nil, fmt.Errorf("r.Rows: %w", err)
	}

	out, err := formatter.Format(r.header, rows)
	if err != nil {
		return nil, fmt.Errorf("formatter.Format: %w", err)
	}

	return out, nil
}
