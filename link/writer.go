package link

import (
	"bufio"
	"fmt"
	"os"
)

// outputWriter buffers one original A-identifier's output file. Records are
// written as "<b_id>,<score>\n" with score formatted to two fractional
// digits, matching the on-disk format C9 requires.
type outputWriter struct {
	file *os.File
	buf  *bufio.Writer
}

func newOutputWriter(path string, bufferBytes int) (*outputWriter, error) {
	f, err := os.Create(path) // #nosec G304 -- path is derived from a caller-supplied output directory
	if err != nil {
		return nil, err
	}
	return &outputWriter{file: f, buf: bufio.NewWriterSize(f, bufferBytes)}, nil
}

// WriteMatch appends one "<candidateID>,<score>" record.
func (w *outputWriter) WriteMatch(candidateID int, score float64) error {
	_, err := fmt.Fprintf(w.buf, "%d,%.2f\n", candidateID, score)
	return err
}

// Close flushes the buffer and closes the underlying file.
func (w *outputWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
