package cli

import (
	"bytes"
	"errors"
	"io"
)

const maxPasswordLineLength = 1024

// readPasswordLine reads one line a byte at a time so nothing past the newline
// is consumed; a second prompt on the same stdin still sees its own input.
func readPasswordLine(input io.Reader) ([]byte, error) {
	line := make([]byte, 0, 64)
	buffer := make([]byte, 1)
	for {
		n, err := input.Read(buffer)
		if n == 1 {
			if buffer[0] == '\n' {
				break
			}
			if len(line) >= maxPasswordLineLength {
				return nil, errors.New("password line too long")
			}
			line = append(line, buffer[0])
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return bytes.TrimRight(line, "\r"), nil
}
