package utf8enc

import (
	"bufio"
	"io"
)

// BufferSink writes into a fixed-capacity buffer and fails once it is full.
type BufferSink struct {
	buf []byte
	n   int
}

// NewBufferSink creates a sink holding at most capacity bytes.
func NewBufferSink(capacity int) *BufferSink {
	return &BufferSink{buf: make([]byte, capacity)}
}

// Put appends b, returning ErrSinkFull when no space remains.
func (s *BufferSink) Put(b byte) error {
	if s.n >= len(s.buf) {
		return ErrSinkFull
	}
	s.buf[s.n] = b
	s.n++
	return nil
}

// Bytes returns the bytes written so far.
func (s *BufferSink) Bytes() []byte {
	return s.buf[:s.n]
}

// Len returns the number of bytes written.
func (s *BufferSink) Len() int {
	return s.n
}

// Remaining returns the free capacity.
func (s *BufferSink) Remaining() int {
	return len(s.buf) - s.n
}

// Reset discards written bytes, keeping the capacity.
func (s *BufferSink) Reset() {
	s.n = 0
}

// SliceSink appends to a growable slice. A positive Limit caps its size.
type SliceSink struct {
	Limit int
	buf   []byte
}

// Put appends b.
func (s *SliceSink) Put(b byte) error {
	if s.Limit > 0 && len(s.buf) >= s.Limit {
		return ErrSinkFull
	}
	s.buf = append(s.buf, b)
	return nil
}

// Bytes returns the bytes written so far.
func (s *SliceSink) Bytes() []byte {
	return s.buf
}

// String returns the written bytes as text.
func (s *SliceSink) String() string {
	return string(s.buf)
}

// WriterSink buffers bytes for an io.Writer. Write errors surface on the
// Put or Flush that triggers them.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

// Put buffers b.
func (s *WriterSink) Put(b byte) error {
	return s.w.WriteByte(b)
}

// Flush writes any buffered bytes to the underlying writer.
func (s *WriterSink) Flush() error {
	return s.w.Flush()
}

// CountingSink counts bytes passed to Inner. A nil Inner discards them.
type CountingSink struct {
	Inner ByteSink
	Count int
}

// Put forwards b and counts it if accepted.
func (s *CountingSink) Put(b byte) error {
	if s.Inner != nil {
		if err := s.Inner.Put(b); err != nil {
			return err
		}
	}
	s.Count++
	return nil
}
