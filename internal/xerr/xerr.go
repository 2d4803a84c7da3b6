// Package xerr carries termframe's error taxonomy: the kinds the CLI's
// exit code depends on (config, I/O, usage, rendering), plus the helpers that
// format an unknown-name error with "did you mean" suggestions.
package xerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vtrender/termframe/internal/suggest"
)

// Kind categorizes an error for exit-code purposes (spec §6: 0 success,
// 1 I/O or config error, 2 usage error).
type Kind int

const (
	KindConfig Kind = iota
	KindIO
	KindUsage
	KindRendering
)

// Error is a typed, wrapped error carrying a Kind so the CLI layer can
// pick an exit code without string-matching messages.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Config wraps err (or just msg, if err is nil) as a configuration error.
func Config(msg string, err error) error {
	return &Error{Kind: KindConfig, msg: msg, err: err}
}

// IO wraps err as an I/O error.
func IO(msg string, err error) error {
	return &Error{Kind: KindIO, msg: msg, err: err}
}

// Usage reports a CLI usage error (bad flag combination, bad positional
// argument).
func Usage(msg string) error {
	return &Error{Kind: KindUsage, msg: msg}
}

// Rendering reports an error in the rendering pipeline; per spec §7 this
// is the only kind that can also surface as a non-fatal warning
// (unresolved glyph) rather than propagate.
func Rendering(msg string, err error) error {
	return &Error{Kind: KindRendering, msg: msg, err: err}
}

// KindOf extracts the Kind from err, defaulting to KindIO for untyped
// errors (matching the CLI's "1 I/O or config error" exit code for
// anything that isn't an explicit usage error).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}

// ExitCode maps err to the process exit code spec §6 defines.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if KindOf(err) == KindUsage {
		return 2
	}
	return 1
}

// UnknownName formats a "did you mean" error for an unresolved theme or
// window style name, listing suggestions ranked by Jaro similarity.
func UnknownName(kind string, name string, hint suggest.Suggestions) error {
	if hint.Empty() {
		return Config(fmt.Sprintf("unknown %s %q", kind, name), nil)
	}
	return Config(
		fmt.Sprintf("unknown %s %q, did you mean: %s?", kind, name, strings.Join(hint.Names(), ", ")),
		nil,
	)
}
