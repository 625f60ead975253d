// Package debug provides optional file-based debug logging.
//
// When the FLEXBOX_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	file   *os.File
	opened bool
)

func output() *os.File {
	mu.Lock()
	defer mu.Unlock()
	if !opened {
		opened = true
		if path := os.Getenv("FLEXBOX_DEBUG"); path != "" {
			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				file = f
			}
		}
	}
	return file
}

// Log writes a debug message if logging is enabled.
func Log(format string, args ...any) {
	f := output()
	if f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(f, format+"\n", args...)
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	return output() != nil
}

// SetOutput overrides the log destination. Pass nil to disable logging.
func SetOutput(f *os.File) {
	mu.Lock()
	defer mu.Unlock()
	opened = true
	file = f
}
