package output

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Logger writes diagnostics to the user cache directory, falling back
// to stderr until the log file can be opened.
type Logger struct {
	logger       *log.Logger
	file         *os.File
	triedFileSet bool
}

func NewLogger() *Logger {
	return &Logger{
		logger:       log.New(os.Stderr, "", log.Ldate|log.Ltime),
		triedFileSet: false,
	}
}

func (l *Logger) setupFile() error {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return err
	}

	dir := filepath.Join(cacheDir, "dbmagic")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Join(dir, "dbmagic.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return err
	}

	l.file = file
	l.logger.SetOutput(file)
	return nil
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

func (l *Logger) log(level, message string) {
	if l.file == nil && !l.triedFileSet {
		err := l.setupFile()
		if err != nil {
			l.logger.Print(err)
		}
		l.triedFileSet = true
	}

	l.logger.Printf("[%s]: %s", level, message)
}

func (l *Logger) Infof(format string, args ...any) {
	l.log("info", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log("error", fmt.Sprintf(format, args...))
}
