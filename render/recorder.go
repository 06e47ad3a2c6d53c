package render

// Operations recorded by Recorder.
const (
	OpClear = "clear"
	OpPrint = "print"
)

// Call is one recorded console operation.
type Call struct {
	Op   string
	Text string
}

// Recorder is a Console that remembers every call.
// Set ClearErr or PrintErr to make the matching operation fail.
type Recorder struct {
	Calls    []Call
	ClearErr error
	PrintErr error
}

// Clear records a clear.
func (r *Recorder) Clear() error {
	r.Calls = append(r.Calls, Call{Op: OpClear})
	return r.ClearErr
}

// Print records a print.
func (r *Recorder) Print(text string) error {
	r.Calls = append(r.Calls, Call{Op: OpPrint, Text: text})
	return r.PrintErr
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// LastPrint returns the text of the most recent print, or "" if none.
func (r *Recorder) LastPrint() string {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op == OpPrint {
			return r.Calls[i].Text
		}
	}
	return ""
}

// Reset forgets all calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}
