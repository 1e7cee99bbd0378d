package testutil

import "io"

// ScriptedStdin feeds prompt answers one line per Read call, the way an
// interactive user would type them, then returns EOF.
type ScriptedStdin struct {
	answers []string
	pending []byte
	next    int
}

func NewScriptedStdin(answers ...string) *ScriptedStdin {
	return &ScriptedStdin{answers: answers}
}

// AcceptDefaultsStdin answers every prompt with a bare newline, taking the
// default choice each time.
func AcceptDefaultsStdin() *ScriptedStdin {
	return NewScriptedStdin("")
}

func (s *ScriptedStdin) Read(p []byte) (int, error) {
	if len(s.pending) == 0 {
		if s.next >= len(s.answers) {
			return 0, io.EOF
		}
		s.pending = []byte(s.answers[s.next] + "\n")
		s.next++
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}
