package jit

// MockLoader records the code bytes it would have installed instead of
// mapping real executable memory, per spec.md §9's guidance that a mock
// loader checking generated code against a golden file is sufficient
// for most regression testing of the parser and generator.
type MockLoader struct {
	// Code is the most recent buffer passed to Run.
	Code []byte
	// Exec, if set, is called in place of actually running the code —
	// tests that want to assert on tape contents after a synthetic
	// "execution" can install one.
	Exec func(code []byte, tape []byte)
	// Err, if set, is returned by Run instead of nil.
	Err error
}

// Run records code and optionally invokes Exec against tape.
func (m *MockLoader) Run(code []byte, tape []byte) error {
	m.Code = append([]byte(nil), code...)
	if m.Exec != nil {
		m.Exec(code, tape)
	}
	return m.Err
}
