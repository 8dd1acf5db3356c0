// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package diag

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

// Sink is the narrow interface the interpreter writes diagnostics to.
// It generalizes the debugp/debugs closures the teacher threads through
// its parser into a single method, since the interpreter needs it at
// every dispatch site rather than just a handful of parse checkpoints.
type Sink interface {
	Printf(format string, args ...any)
}

// StderrSink writes to an underlying writer (normally os.Stderr) using
// the dialect's "path(line): text" line shape. When the destination is a
// real terminal it prefixes each line with a timestamp via the standard
// logger; piped output (redirected to a file, or through another
// process) skips the timestamp so batch logs stay diffable.
type StderrSink struct {
	w      io.Writer
	logger *log.Logger
}

// NewStderrSink builds a Sink over w. isTerminal is resolved with
// mattn/go-isatty against w's file descriptor when w is an *os.File;
// other writers are treated as non-terminals.
func NewStderrSink(w io.Writer) *StderrSink {
	s := &StderrSink{w: w}
	if isTerminalWriter(w) {
		s.logger = log.New(w, "", log.Ltime)
	} else {
		s.logger = log.New(w, "", 0)
	}
	return s
}

// Default returns a StderrSink writing to os.Stderr.
func Default() *StderrSink {
	return NewStderrSink(os.Stderr)
}

func (s *StderrSink) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Capture is a Sink that records every formatted line, for tests that
// want to assert on diagnostic output instead of letting it go to
// stderr.
type Capture struct {
	Lines []string
}

func (c *Capture) Printf(format string, args ...any) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}
