package pad

import (
	"fmt"

	"fredulator/calcos/engine"
	"fredulator/calcos/proto"
)

// apply feeds one key into the state machine and returns the text the
// display should show: digits show the entry buffer, operators show the
// committed value, equals shows the result, AC shows zero, sign and
// percent show buffer-else-value.
//
// The second return value is a log line for completed calculations, empty
// otherwise.
func (t *Task) apply(k proto.PadKey, r rune) (text, logLine string) {
	switch k {
	case proto.PadClear:
		t.state.Clear()
		return t.state.Display(), ""

	case proto.PadDigit:
		t.state.InputDigit(r)
		return t.state.Buffer(), ""

	case proto.PadAdd:
		t.state.SetOperation(engine.OpAdd)
		return engine.Format(t.state.Value()), ""

	case proto.PadSubtract:
		t.state.SetOperation(engine.OpSubtract)
		return engine.Format(t.state.Value()), ""

	case proto.PadMultiply:
		t.state.SetOperation(engine.OpMultiply)
		return engine.Format(t.state.Value()), ""

	case proto.PadDivide:
		t.state.SetOperation(engine.OpDivide)
		return engine.Format(t.state.Value()), ""

	case proto.PadSign:
		t.state.ToggleSign()
		return t.state.Display(), ""

	case proto.PadPercent:
		t.state.Percent()
		return t.state.Display(), ""

	case proto.PadEquals:
		a := t.state.Value()
		op := t.state.Pending()
		operand := t.state.Buffer()
		if operand == "" {
			operand = "0"
		}
		res := t.state.Calculate()
		if op != engine.OpNone {
			logLine = fmt.Sprintf("calc: %s %s %s = %s",
				engine.Format(a), op.Symbol(), operand, engine.Format(res))
		}
		return engine.Format(res), logLine
	}

	return t.state.Display(), ""
}
