package render

// State is the context carried from one rendered instruction to the next.
// It lives for one run over one input stream.
type State struct {
	LineNumber   int  // number of the next instruction, starting at 1
	InSubroutine bool // a subroutine label was rendered and not yet returned from
}

// NewState returns the state for the start of a stream.
func NewState() *State {
	return &State{LineNumber: 1}
}
