package interaction

import (
	"os"

	"golang.org/x/sys/unix"
)

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	oldState *unix.Termios
	input    chan KeyEvent
	stop     chan struct{}
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

// NewKeyboardReader creates a new keyboard reader in raw mode
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := &KeyboardReader{
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}

	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}

	go kr.readInput()

	return kr, nil
}

// readInput reads keyboard input in a goroutine
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 3)

	for {
		select {
		case <-kr.stop:
			return
		default:
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			event := kr.parseInput(buf[:n])
			if event != nil {
				select {
				case kr.input <- *event:
				case <-kr.stop:
					return
				}
			}
		}
	}
}

// parseInput parses raw keyboard input
func (kr *KeyboardReader) parseInput(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	if buf[0] == 3 { // Ctrl+C
		return &KeyEvent{Key: 3, Type: KeyChar}
	}

	if buf[0] == 27 { // ESC
		if len(buf) == 1 {
			return &KeyEvent{Key: 27, Type: KeyEscape}
		}
		// Arrow keys and other escape sequences are ignored
		return nil
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores the terminal
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	return kr.disableRawMode()
}
