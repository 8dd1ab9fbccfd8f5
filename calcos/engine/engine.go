package engine

import (
	"math"
	"strconv"
	"strings"
)

// epsilon is the float64 machine epsilon: the gap between 1.0 and the next
// representable value. Divisions by anything smaller are suppressed.
var epsilon = math.Nextafter(1, 2) - 1

// Op identifies the pending binary operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the operator's arithmetic sign, or "" for OpNone.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return ""
	}
}

// State is the four-function calculator state machine: the committed value,
// the operand being typed, and the operator waiting for its second operand.
//
// It is not safe for concurrent use. The pad task is its single owner and
// feeds it one event at a time.
type State struct {
	value  float64
	buffer string
	op     Op
}

// New returns a cleared state: value 0, empty buffer, no pending operator.
func New() *State {
	return &State{}
}

// Clear resets to the initial state.
func (s *State) Clear() {
	s.value = 0
	s.buffer = ""
	s.op = OpNone
}

// InputDigit appends one typed character to the entry buffer. A second
// decimal point is ignored; everything else is kept verbatim and only
// interpreted when an operator or calculation consumes the buffer.
func (s *State) InputDigit(r rune) {
	if r == '.' && strings.ContainsRune(s.buffer, '.') {
		return
	}
	s.buffer += string(r)
}

// SetOperation commits the typed operand (if any) to the value and records
// op as pending. A previously pending operator is replaced, not applied.
func (s *State) SetOperation(op Op) {
	if s.buffer != "" {
		s.value = parse(s.buffer)
		s.buffer = ""
	}
	s.op = op
}

// Calculate applies the pending operator to the committed value and the
// typed operand, stores the result, clears the pending operator, and
// returns the result.
//
// With no pending operator the typed operand passes through unchanged.
// Dividing by a near-zero operand yields 0 rather than an infinity.
func (s *State) Calculate() float64 {
	operand := 0.0
	if s.buffer != "" {
		operand = parse(s.buffer)
	}
	s.buffer = ""

	switch s.op {
	case OpAdd:
		s.value += operand
	case OpSubtract:
		s.value -= operand
	case OpMultiply:
		s.value *= operand
	case OpDivide:
		if math.Abs(operand) < epsilon {
			s.value = 0
		} else {
			s.value /= operand
		}
	default:
		s.value = operand
	}

	s.op = OpNone
	return s.value
}

// ToggleSign negates the operand being typed, or the committed value when
// nothing is typed. A buffer that does not parse is left unchanged.
func (s *State) ToggleSign() {
	if s.buffer != "" {
		if v, err := strconv.ParseFloat(s.buffer, 64); err == nil {
			s.buffer = Format(-v)
		}
		return
	}
	s.value = -s.value
}

// Percent divides the operand being typed (or the committed value) by 100.
// A buffer that does not parse is left unchanged.
func (s *State) Percent() {
	if s.buffer != "" {
		if v, err := strconv.ParseFloat(s.buffer, 64); err == nil {
			s.buffer = Format(v / 100)
		}
		return
	}
	s.value /= 100
}

// Buffer returns the operand characters typed since the last commit.
func (s *State) Buffer() string { return s.buffer }

// Value returns the committed accumulator value.
func (s *State) Value() float64 { return s.value }

// Pending returns the operator waiting for its second operand.
func (s *State) Pending() Op { return s.op }

// Display returns the text a display surface should show: the entry buffer
// while one is being typed, else the committed value.
func (s *State) Display() string {
	if s.buffer != "" {
		return s.buffer
	}
	return Format(s.value)
}

// Format renders a value the way the display shows it: the shortest decimal
// form, never switching to an exponent.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parse interprets buffer text as a number. Unparsable content counts as 0.
func parse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
