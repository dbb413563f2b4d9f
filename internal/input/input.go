// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// Input represents the current frame's input state.
type Input struct {
	Up      bool
	Down    bool
	Quit    bool
	Pressed []byte // Raw bytes received since the previous frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	up   time.Time
	down time.Time
}

// Stream delivers input bytes via a channel and tracks key state.
// Terminals report presses but not releases, so a key counts as held for
// holdFor after its last byte.
type Stream struct {
	ch      chan byte
	state   keyState
	holdFor time.Duration
	closed  bool
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (EOF or a closed session).
func StartStream(r *bufio.Reader, holdFor time.Duration) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		holdFor: holdFor,
		now:     time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	quit := s.closed
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.down = now
				i += 2
				continue
			case 'C', 'D': // Right/left arrows do nothing
				i += 2
				continue
			}
		}

		if applyByteToState(&s.state, b, now) {
			quit = true
		}
	}

	return Input{
		Up:      now.Sub(s.state.up) < s.holdFor,
		Down:    now.Sub(s.state.down) < s.holdFor,
		Quit:    quit,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed
// byte and reports whether it asked to quit.
func applyByteToState(state *keyState, b byte, now time.Time) bool {
	switch b {
	case 'q', 'Q', '\x03': // \x03 is Ctrl-C in raw mode
		return true
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	}
	return false
}
