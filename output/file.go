package output

import (
	"fmt"
	"os"

	"github.com/dbmagic/dbmagic/core"
)

// File writes a formatted result to a file on disk.
type File struct {
	path      string
	formatter core.Formatter
}

func NewFile(path string, formatter core.Formatter) *File {
	return &File{
		path:      path,
		formatter: formatter,
	}
}

func (f *File) Write(result *core.Result) error {
	out, err := result.Format(f.formatter, 0, result.Len())
	if err != nil {
		return fmt.Errorf("result.Format: %w", err)
	}

	if err := os.WriteFile(f.path, out, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}
