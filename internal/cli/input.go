package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal. Tests replace them to avoid touching a tty.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	getState     = term.GetState
	restoreState = term.Restore
)

// fdReader is satisfied by *os.File.
type fdReader interface {
	io.Reader
	Fd() uintptr
}

type readResult struct {
	secret []byte
	err    error
}

// GetPassword prints a prompt to w and reads the master secret from r.
//
// When r is a terminal the secret is read without echo and a newline is
// printed afterwards. Any other reader yields its first line, so secrets can
// be piped. Cancelling ctx ends the wait with ctx.Err(); on a terminal the
// echo state is restored first.
//
// The returned slice should be wiped by the caller.
func GetPassword(ctx context.Context, r io.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "master password: "); err != nil {
		return nil, err
	}

	fd := -1
	if f, ok := r.(fdReader); ok && isTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	read := func() ([]byte, error) { return readLine(r) }
	onCancel := func() {}
	if fd >= 0 {
		state, _ := getState(fd)
		readTerm, restore := readPassword, restoreState
		onCancel = func() {
			if state != nil {
				_ = restore(fd, state)
			}
		}
		read = func() ([]byte, error) {
			pw, err := readTerm(fd)
			fmt.Fprintln(w)
			return pw, err
		}
	}

	// The read cannot be interrupted, so it runs aside and is abandoned on
	// cancellation.
	done := make(chan readResult, 1)
	go func() {
		pw, err := read()
		done <- readResult{secret: pw, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.secret, nil
	case <-ctx.Done():
		onCancel()
		fmt.Fprintln(w)
		return nil, ctx.Err()
	}
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, fmt.Errorf("read master password: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
