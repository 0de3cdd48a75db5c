// errs.go - error kinds surfaced by the interpreter core

package gtu8080

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the four error categories the core can raise.
type Kind int

const (
	// KindInvalidOpcode covers unimplemented opcodes.
	KindInvalidOpcode Kind = iota
	// KindMemoryAccessViolation covers out-of-range addresses, writes to
	// read-only mappings, overlapping mappings and bad bank numbers.
	KindMemoryAccessViolation
	// KindStackOverflow covers a push moving SP below a host-configured
	// stack floor.
	KindStackOverflow
	// KindInvalidInterrupt covers dequeuing from an empty interrupt queue.
	KindInvalidInterrupt
)

func (k Kind) String() string {
	switch k {
	case KindInvalidOpcode:
		return "InvalidOpcode"
	case KindMemoryAccessViolation:
		return "MemoryAccessViolation"
	case KindStackOverflow:
		return "StackOverflow"
	case KindInvalidInterrupt:
		return "InvalidInterrupt"
	default:
		return "Unknown"
	}
}

// Error is a core error tagged with its Kind. The host loop switches on
// Kind rather than string-matching Error().
type Error struct {
	Kind Kind
	Msg  string
}

// newError creates a new, formatted core error of the given kind.
func newError(kind Kind, f string, argv ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(f, argv...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// wrap attaches call-chain context to an existing error without losing its
// Kind, so a host can still recover it via AsCoreError.
func wrap(err error, context string) error {
	return errors.Wrapf(err, "%s", context)
}

// AsCoreError recovers the *Error beneath any wrapping applied by wrap.
func AsCoreError(err error) (*Error, bool) {
	cause := errors.Cause(err)
	ce, ok := cause.(*Error)
	return ce, ok
}
