// Package fastio reads whitespace-separated integers and writes answers with
// one buffered syscall per flush, the way judge-style drivers expect.
package fastio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrBadToken indicates input that is not a decimal integer.
var ErrBadToken = errors.New("fastio: malformed integer")

// Reader scans signed decimal integers separated by any ASCII whitespace.
type Reader struct {
	r   *bufio.Reader
	buf []byte
}

// NewReader wraps r with a 64 KiB buffer.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 1<<16), buf: make([]byte, 0, 24)}
}

// token returns the next whitespace-delimited token. The slice is reused.
func (in *Reader) token() ([]byte, error) {
	in.buf = in.buf[:0]
	for {
		c, err := in.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(in.buf) > 0 {
				return in.buf, nil
			}
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if c == ' ' || c == '\n' || c == '\r' || c == '\t' {
			if len(in.buf) > 0 {
				return in.buf, nil
			}
			continue
		}
		in.buf = append(in.buf, c)
	}
}

// Int64 reads the next integer.
func (in *Reader) Int64() (int64, error) {
	tok, err := in.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(string(tok), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return v, nil
}

// Int reads the next integer as an int.
func (in *Reader) Int() (int, error) {
	v, err := in.Int64()
	return int(v), err
}

// Int64s reads n integers.
func (in *Reader) Int64s(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := in.Int64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Writer buffers output; call Flush before exit.
type Writer struct {
	w       *bufio.Writer
	scratch []byte
}

// NewWriter wraps w with a 64 KiB buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 1<<16), scratch: make([]byte, 0, 24)}
}

// Int64s writes vs separated by single spaces and ends the line.
func (out *Writer) Int64s(vs ...int64) {
	for i, v := range vs {
		if i > 0 {
			_ = out.w.WriteByte(' ')
		}
		out.scratch = strconv.AppendInt(out.scratch[:0], v, 10)
		_, _ = out.w.Write(out.scratch)
	}
	_ = out.w.WriteByte('\n')
}

// Line writes s followed by a newline.
func (out *Writer) Line(s string) {
	_, _ = out.w.WriteString(s)
	_ = out.w.WriteByte('\n')
}

// Flush writes buffered data to the underlying writer.
func (out *Writer) Flush() error {
	return out.w.Flush()
}
