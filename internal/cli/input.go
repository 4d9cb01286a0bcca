package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// GetSimpleText prints prompt to w and reads a single line of input from
// reader. Only the line terminator is removed; the text is otherwise returned
// as typed. If EOF occurs after some input was read, the partial line is
// returned; otherwise io.EOF is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetOption reads a menu choice. Surrounding whitespace is ignored.
func GetOption(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	opt, err := GetSimpleText(reader, prompt, w)
	return strings.TrimSpace(opt), err
}

// GetPassword prints prompt to w and reads a password. When fd refers to a
// terminal the password is read without echo and a newline is printed after
// it. A plain line is read from reader instead when fd < 0, or when reader
// already holds input (pasted ahead of the prompt), since the terminal would
// never see those bytes again.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer, fd int) (string, error) {
	if fd < 0 || reader.Buffered() > 0 {
		return GetSimpleText(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// terminalFd returns the descriptor of in when it is an interactive
// terminal, or -1.
func terminalFd(in io.Reader) int {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok {
		return -1
	}
	fd := int(f.Fd())
	if !isTerminal(fd) {
		return -1
	}
	return fd
}
