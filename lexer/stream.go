package lexer

import (
	"errors"
	"fmt"
)

// ErrEndOfStream is returned by Peek and Next once every token has been
// consumed.  Reaching it is expected, not a sign of corruption; callers
// match it with errors.Is and decide whether exhaustion is legal where
// they stand.
var ErrEndOfStream = errors.New("end of token stream")

// Stream is a forward-only cursor over a token sequence.  There is no
// backtracking primitive: a rule that cannot yet commit to a token must
// Peek, not Next.
type Stream struct {
	toks []Token
	pos  int
}

func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Peek returns the token under the cursor without advancing.
func (s *Stream) Peek() (Token, error) {
	if s.pos >= len(s.toks) {
		return "", ErrEndOfStream
	}
	return s.toks[s.pos], nil
}

// Next returns the token under the cursor and advances past it.
func (s *Stream) Next() (Token, error) {
	t, err := s.Peek()
	if err != nil {
		return "", err
	}
	s.pos++
	return t, nil
}

// SeekTo advances the cursor to the first occurrence of t at or after the
// current position.  The search never looks behind the cursor, so seeking
// can skip leading tokens but cannot rewind.
func (s *Stream) SeekTo(t Token) error {
	for i := s.pos; i < len(s.toks); i++ {
		if s.toks[i] == t {
			s.pos = i
			return nil
		}
	}
	return fmt.Errorf("‘%s’ not found", t)
}
