package csvtable

import (
	"encoding/csv"
	stderrs "errors"
	"io"
	"os"

	perr "repoinventory/internal/platform/errors"
)

// Writer streams records to a CSV table after a header row
type Writer struct {
	name  string
	wc    io.WriteCloser
	cw    *csv.Writer
	width int
	rows  int
}

// Create creates (or truncates) path and writes header
func Create(path string, header []string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeIO, "create %s", path), "csvtable.create")
	}
	return NewWriter(path, f, header)
}

// NewWriter writes header to wc and returns a Writer. wc is closed on failure
func NewWriter(name string, wc io.WriteCloser, header []string) (*Writer, error) {
	w := &Writer{name: name, wc: wc, cw: csv.NewWriter(wc), width: len(header)}
	if err := w.cw.Write(header); err != nil {
		_ = wc.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "write header %s", name)
	}
	return w, nil
}

// Write appends one record. Its width must match the header
func (w *Writer) Write(rec []string) error {
	if w.cw == nil {
		return perr.IOf("write %s: writer closed", w.name)
	}
	if len(rec) != w.width {
		return perr.Newf(perr.ErrorCodeUnknown, "write %s: record has %d fields, header has %d", w.name, len(rec), w.width)
	}
	if err := w.cw.Write(rec); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "write %s row %d", w.name, w.rows+1)
	}
	w.rows++
	return nil
}

// Close flushes buffered rows and closes the file. It is safe to call more
// than once; flush and close failures are both reported
func (w *Writer) Close() error {
	if w.cw == nil {
		return nil
	}
	w.cw.Flush()
	flushErr := w.cw.Error()
	closeErr := w.wc.Close()
	w.cw = nil
	if err := stderrs.Join(flushErr, closeErr); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "finalize %s", w.name)
	}
	return nil
}
