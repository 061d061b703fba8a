package logger

import (
	"fmt"
	"os"

	"github.com/wtt-cli/wtt/internal/config"
	"github.com/wtt-cli/wtt/internal/styles"
)

// Debug prints debug information when debug mode is enabled
func Debug(format string, args ...any) {
	if config.IsDebug() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints informational messages
func Info(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Success prints success messages
func Success(format string, args ...any) {
	if config.IsPlain() {
		fmt.Printf(format+"\n", args...)
	} else {
		fmt.Printf(styles.Render(&styles.Success, "✓")+" "+format+"\n", args...)
	}
}

// Warning prints warning messages to stderr
func Warning(format string, args ...any) {
	if config.IsPlain() {
		fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
	} else {
		fmt.Fprintf(os.Stderr, styles.Render(&styles.Warning, "!")+" "+format+"\n", args...)
	}
}

// Error prints error messages to stderr
func Error(format string, args ...any) {
	if config.IsPlain() {
		fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	} else {
		fmt.Fprintf(os.Stderr, styles.Render(&styles.Error, "✗")+" "+format+"\n", args...)
	}
}
