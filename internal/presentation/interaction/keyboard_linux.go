//go:build linux

package interaction

import (
	"os"

	"golang.org/x/sys/unix"
)

// enableRawMode sets the terminal to raw mode on Linux
func (kr *KeyboardReader) enableRawMode() error {
	fd := int(os.Stdin.Fd())

	oldState, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	kr.oldState = oldState

	newState := *oldState
	newState.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	// Keep ISIG enabled to allow Ctrl+C handling
	newState.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	newState.Cflag |= unix.CS8
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, unix.TCSETS, &newState)
}

// disableRawMode restores the terminal to normal mode on Linux
func (kr *KeyboardReader) disableRawMode() error {
	if kr.oldState == nil {
		return nil
	}

	fd := int(os.Stdin.Fd())
	return unix.IoctlSetTermios(fd, unix.TCSETS, kr.oldState)
}
