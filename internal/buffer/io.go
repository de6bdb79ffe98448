package buffer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadFrom replaces the buffer with the lines read from r, in source order.
// Lines are separated by "\n"; a "\r" before the separator is dropped so
// CRLF files load cleanly. A final line without a separator is kept.
//
// The whole source is read before the buffer changes, so a read error leaves
// the buffer and its history untouched. On success exactly one history entry
// is captured.
func (b *Buffer) LoadFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, b.opt.MaxLineLength)), b.opt.MaxLineLength)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading lines: %w", err)
	}

	b.capture()
	b.lines = lines
	return nil
}

// SaveTo writes every line to w, each terminated by "\n".
func (b *Buffer) SaveTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, l := range b.lines {
		if _, err := bw.WriteString(l); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
