package tui

import "golang.org/x/sys/unix"

// TerminalSize returns the dimensions of the terminal on fd.
func TerminalSize(fd int) (Area, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Area{}, err
	}
	return Area{Width: int(ws.Col), Height: int(ws.Row)}, nil
}
