// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/battlegrid/bf42con/internal/command"
	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/store"
	"github.com/google/uuid"
)

// ArchiveSource is the optional injected collaborator EXTERNAL INTERFACES
// describes: extractFile(path) -> text | false. When absent, the reader
// falls back to the filesystem.
type ArchiveSource interface {
	ExtractFile(path string) (text string, ok bool)
}

// ifState is one frame of the conditional stack.
type ifState int

const (
	ifFalse ifState = iota
	ifTrue
	ifConsumed
)

// Reader is one interpreter invocation: the state 4.3 describes as
// per-invocation (rem_block, if_stack) plus the v_argN bindings a "run"
// call scopes to its own context. Multiple Readers share the same
// WorldData, Sink, Archive, and RunID — include() reuses the same
// Reader (and therefore its control-flow state); run() builds a fresh
// child Reader with its own control-flow state and argument bindings.
type Reader struct {
	Data    *store.WorldData
	Sink    diag.Sink
	Archive ArchiveSource
	RunID   string

	// SuppressDispatchErrors and SuppressIOFailures drop the matching
	// Sink.Printf call, mirroring config.Diagnostics.LogDispatchErrors
	// and config.Diagnostics.LogIOFailures. Both default to false, so a
	// Reader built without touching them logs everything, same as before
	// this config was wired in.
	SuppressDispatchErrors bool
	SuppressIOFailures     bool

	dir        string
	locals     map[string]string
	remBlock   bool
	ifStack    []ifState
	staticMode bool
}

// NewReader builds a top-level interpreter context over data, stamping
// it with a fresh run id so interleaved diagnostics from concurrent
// batch jobs can be told apart.
func NewReader(data *store.WorldData, sink diag.Sink) *Reader {
	return &Reader{
		Data:   data,
		Sink:   sink,
		RunID:  uuid.NewString(),
		locals: make(map[string]string),
	}
}

func (r *Reader) newChild() *Reader {
	return &Reader{
		Data:                   r.Data,
		Sink:                   r.Sink,
		Archive:                r.Archive,
		RunID:                  r.RunID,
		SuppressDispatchErrors: r.SuppressDispatchErrors,
		SuppressIOFailures:     r.SuppressIOFailures,
		locals:                 make(map[string]string),
		staticMode:             r.staticMode,
	}
}

// ReadFile reads path (via the archive source if one is configured, else
// the filesystem) and interprets its contents. A missing file is an I/O
// failure per 7: it is reported to the sink and treated as empty, never
// fatal.
func (r *Reader) ReadFile(path string) error {
	text, err := r.readSource(path)
	if err != nil {
		if !r.SuppressIOFailures {
			r.Sink.Printf("[%s] %s: %v", r.RunID, path, err)
		}
		return nil
	}
	r.interpret(path, text)
	return nil
}

// ReadFileWithArgs reads path in a fresh child context with v_arg1..N
// bound to args, the way "run" scopes its arguments and the way
// EXTERNAL INTERFACES' readAllScripts invokes Init.con/Conquest.con/
// StaticObjects.con with v_arg1="host".
func (r *Reader) ReadFileWithArgs(path string, args []string) error {
	child := r.newChild()
	for i, a := range args {
		child.locals[fmt.Sprintf("v_arg%d", i+1)] = a
	}
	return child.ReadFile(path)
}

// ReadStaticFile reads path in a fresh child context with static mode
// on, so every object.create it processes is also appended to the
// static-instance subset.
func (r *Reader) ReadStaticFile(path string, args []string) error {
	child := r.newChild()
	child.staticMode = true
	for i, a := range args {
		child.locals[fmt.Sprintf("v_arg%d", i+1)] = a
	}
	return child.ReadFile(path)
}

// HasOpenConditional reports whether this context's conditional stack
// has any unmatched "if" left on it.
func (r *Reader) HasOpenConditional() bool {
	return len(r.ifStack) > 0
}

func (r *Reader) readSource(path string) (string, error) {
	if r.Archive != nil {
		if text, ok := r.Archive.ExtractFile(path); ok {
			return text, nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Reader) interpret(path, text string) {
	prevDir := r.dir
	r.dir = filepath.Dir(path)
	defer func() { r.dir = prevDir }()

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	for i, raw := range strings.Split(text, "\n") {
		r.processLine(path, i+1, strings.TrimSpace(raw))
	}
}

func (r *Reader) processLine(path string, lineNo int, line string) {
	if line == "" {
		return
	}
	c := command.Parse(line)

	isVarOrConst := strings.EqualFold(c.ClassName, "var") || strings.EqualFold(c.ClassName, "const")
	if !isVarOrConst {
		r.substitute(c.Arguments)
	}

	switch {
	case c.Method == "" && strings.EqualFold(c.ClassName, "beginrem"):
		r.remBlock = true
		return
	case c.Method == "" && strings.EqualFold(c.ClassName, "endrem"):
		r.remBlock = false
		return
	case c.Method == "" && strings.EqualFold(c.ClassName, "rem"):
		return
	case c.Method == "" && strings.EqualFold(c.ClassName, "if"):
		r.pushIf(c.Arguments)
		return
	case c.Method == "" && strings.EqualFold(c.ClassName, "elseif"):
		r.evalElseif(c.Arguments)
		return
	case c.Method == "" && strings.EqualFold(c.ClassName, "else"):
		r.evalElse()
		return
	case c.Method == "" && strings.EqualFold(c.ClassName, "endif"):
		r.popIf()
		return
	}

	if r.suppressed() {
		return
	}
	if !c.HasClass() {
		return
	}

	if err := r.dispatch(c); err != nil {
		if !r.SuppressDispatchErrors {
			r.Sink.Printf("[%s] Exception in read(): %s (%d): %s", r.RunID, path, lineNo, line)
		}
	}
}

func (r *Reader) suppressed() bool {
	if r.remBlock {
		return true
	}
	for _, s := range r.ifStack {
		if s == ifFalse || s == ifConsumed {
			return true
		}
	}
	return false
}

func (r *Reader) pushIf(args []string) {
	r.ifStack = append(r.ifStack, boolToState(evalCondition(args)))
}

func (r *Reader) evalElseif(args []string) {
	if len(r.ifStack) == 0 {
		return
	}
	top := len(r.ifStack) - 1
	switch r.ifStack[top] {
	case ifFalse:
		if evalCondition(args) {
			r.ifStack[top] = ifTrue
		}
	case ifTrue:
		r.ifStack[top] = ifConsumed
	}
}

func (r *Reader) evalElse() {
	if len(r.ifStack) == 0 {
		return
	}
	top := len(r.ifStack) - 1
	switch r.ifStack[top] {
	case ifFalse:
		r.ifStack[top] = ifTrue
	case ifTrue:
		r.ifStack[top] = ifConsumed
	}
}

func (r *Reader) popIf() {
	if len(r.ifStack) == 0 {
		return
	}
	r.ifStack = r.ifStack[:len(r.ifStack)-1]
}

func boolToState(b bool) ifState {
	if b {
		return ifTrue
	}
	return ifFalse
}

// evalCondition implements "A op B", only "==" supported, case-insensitive.
func evalCondition(args []string) bool {
	if len(args) < 3 || args[1] != "==" {
		return false
	}
	return strings.EqualFold(args[0], args[2])
}

// substitute rewrites each v_/c_ argument in place with its bound value,
// leaving unknown identifiers untouched.
func (r *Reader) substitute(args []string) {
	for i, a := range args {
		switch {
		case hasFoldPrefix(a, "v_"):
			if v, ok := r.lookupVar(a); ok {
				args[i] = v
			}
		case hasFoldPrefix(a, "c_"):
			if v, ok := r.Data.Constants[strings.ToLower(a)]; ok {
				args[i] = v
			}
		}
	}
}

func (r *Reader) lookupVar(name string) (string, bool) {
	key := strings.ToLower(name)
	if v, ok := r.locals[key]; ok {
		return v, true
	}
	v, ok := r.Data.Variables[key]
	return v, ok
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func resolvePath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
