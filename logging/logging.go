// Package logging is the command-line logger. Library packages do not log;
// only cmd/keypadchain calls into this package.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should prefer the helper functions.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "keypadchain"})

// SetOutput redirects the logger, keeping its level and prefix.
func SetOutput(w io.Writer) {
	lvl := L.GetLevel()
	L = clog.NewWithOptions(w, clog.Options{Prefix: "keypadchain"})
	L.SetLevel(lvl)
}

// SetLevel sets the minimum level from a name such as "debug" or "warn".
// An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	lvl, err := clog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	L.SetLevel(lvl)

	return nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
