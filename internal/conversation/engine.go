// Package conversation implements the per-user dialogue state machine.
// A conversation collects the fields of exactly one currency operation
// across turns; Advance is pure, so the caller owns all session state.
package conversation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Operation is the top-level action a conversation collects fields for.
type Operation int

const (
	OpNone Operation = iota
	OpAdd
	OpUpdate
	OpDelete
	OpConvert
)

func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpConvert:
		return "convert"
	default:
		return "none"
	}
}

// Phase identifies which field the conversation is waiting for.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingCode
	PhaseAwaitingRate
	PhaseAwaitingAmount
)

// State is the full conversation state between two turns. Only values
// that passed their validator are ever stored in it.
type State struct {
	Op    Operation
	Code  string
	Phase Phase
}

// Request is the fully validated payload produced by a completed
// conversation. It is constructed once and never modified.
type Request struct {
	Op     Operation
	Code   string
	Rate   decimal.Decimal // add, update
	Amount decimal.Decimal // convert
}

// Validation errors. The state does not advance when one is returned.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidCode      = errors.New("invalid currency code")
	ErrInvalidNumber    = errors.New("invalid number")
)

// Idle returns the initial state.
func Idle() State {
	return State{}
}

// Advance feeds one user turn into the state machine.
//
// It returns the next state, the completed request if this turn finished
// the operation, and a validation error. On a validation error the
// returned state equals the input state: previously collected fields are
// kept and the caller re-prompts. "back" resets any state to Idle and
// drops everything collected so far. A returned Request is terminal; the
// next state is always Idle regardless of what the backend later does
// with the request.
func Advance(s State, input string) (State, *Request, error) {
	text := strings.TrimSpace(input)

	if strings.EqualFold(text, "back") {
		return Idle(), nil, nil
	}

	switch s.Phase {
	case PhaseIdle:
		return selectOperation(text)

	case PhaseAwaitingCode:
		code, err := NormalizeCode(text)
		if err != nil {
			return s, nil, err
		}
		if s.Op == OpDelete {
			// delete needs no second field
			return Idle(), &Request{Op: OpDelete, Code: code}, nil
		}
		next := s
		next.Code = code
		if s.Op == OpConvert {
			next.Phase = PhaseAwaitingAmount
		} else {
			next.Phase = PhaseAwaitingRate
		}
		return next, nil, nil

	case PhaseAwaitingRate:
		rate, err := ParsePositiveDecimal(text)
		if err != nil {
			return s, nil, err
		}
		return Idle(), &Request{Op: s.Op, Code: s.Code, Rate: rate}, nil

	case PhaseAwaitingAmount:
		amount, err := ParsePositiveDecimal(text)
		if err != nil {
			return s, nil, err
		}
		return Idle(), &Request{Op: OpConvert, Code: s.Code, Amount: amount}, nil
	}

	return Idle(), nil, nil
}

func selectOperation(text string) (State, *Request, error) {
	switch strings.ToLower(text) {
	case "add":
		return State{Op: OpAdd, Phase: PhaseAwaitingCode}, nil, nil
	case "update":
		return State{Op: OpUpdate, Phase: PhaseAwaitingCode}, nil, nil
	case "delete":
		return State{Op: OpDelete, Phase: PhaseAwaitingCode}, nil, nil
	case "convert":
		return State{Op: OpConvert, Phase: PhaseAwaitingCode}, nil, nil
	default:
		return Idle(), nil, ErrUnknownOperation
	}
}

// NormalizeCode validates a currency code: 1-10 Latin letters after
// trimming, returned uppercased.
func NormalizeCode(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "" || len(code) > 10 {
		return "", ErrInvalidCode
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCode
		}
	}
	return code, nil
}

// ParsePositiveDecimal parses a strictly positive decimal, accepting
// both "." and "," as the fractional separator.
func ParsePositiveDecimal(input string) (decimal.Decimal, error) {
	text := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	value, err := decimal.NewFromString(text)
	if err != nil || !value.IsPositive() {
		return decimal.Zero, ErrInvalidNumber
	}
	return value, nil
}
