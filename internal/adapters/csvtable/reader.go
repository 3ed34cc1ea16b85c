package csvtable

import (
	"encoding/csv"
	stderrs "errors"
	"io"
	"os"
	"strings"

	perr "repoinventory/internal/platform/errors"
	"repoinventory/internal/platform/logger"
)

const utf8BOM = "\ufeff"

// Row is one decoded record addressed by column name
type Row struct {
	cols map[string]int
	rec  []string
	line int
}

// Get returns the value of column name, or "" if the table has no such column
func (r Row) Get(name string) string {
	if i, ok := r.cols[name]; ok {
		return r.rec[i]
	}
	return ""
}

// Line returns the 1-based line the record starts on
func (r Row) Line() int { return r.line }

// Reader streams Rows from a CSV table with a header row
type Reader struct {
	name string
	rc   io.ReadCloser
	cr   *csv.Reader
	cols map[string]int
	err  error
}

// Open opens path and returns a Reader that requires the given columns
func Open(path string, required ...string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeIO, "open %s", path), "csvtable.open")
	}
	return NewReader(path, f, required...)
}

// NewReader reads the header from rc and checks that every required column
// is present. name labels errors and logs. rc is closed on failure
func NewReader(name string, rc io.ReadCloser, required ...string) (*Reader, error) {
	cr := csv.NewReader(rc)
	cr.FieldsPerRecord = 0 // the header fixes the width of every record

	header, err := cr.Read()
	if err != nil {
		_ = rc.Close()
		if stderrs.Is(err, io.EOF) {
			return nil, perr.Decodef("%s: missing header row", name)
		}
		return nil, wrapReadErr(name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	for _, want := range required {
		if _, ok := cols[want]; !ok {
			_ = rc.Close()
			return nil, perr.WithField(perr.Decodef("%s: missing column %q", name, want), want)
		}
	}

	logger.Named("csvtable").Debug().
		Str("table", name).
		Strs("header", header).
		Msg("csvtable: opened")

	return &Reader{name: name, rc: rc, cr: cr, cols: cols}, nil
}

// Next returns the next row; io.EOF when the table is exhausted
func (r *Reader) Next() (Row, error) {
	if r.err != nil {
		return Row{}, r.err
	}
	rec, err := r.cr.Read()
	if err != nil {
		if stderrs.Is(err, io.EOF) {
			r.err = io.EOF
		} else {
			r.err = wrapReadErr(r.name, err)
		}
		return Row{}, r.err
	}
	line, _ := r.cr.FieldPos(0)
	return Row{cols: r.cols, rec: rec, line: line}, nil
}

// Close closes the underlying reader
func (r *Reader) Close() error {
	if r.rc == nil {
		return nil
	}
	err := r.rc.Close()
	r.rc = nil
	return perr.WrapIf(err, perr.ErrorCodeIO, "close "+r.name)
}

// wrapReadErr classifies csv failures: parse errors are schema problems,
// everything else came from the underlying reader
func wrapReadErr(name string, err error) error {
	var pe *csv.ParseError
	if stderrs.As(err, &pe) {
		return perr.Wrapf(err, perr.ErrorCodeDecode, "%s: line %d", name, pe.StartLine)
	}
	return perr.Wrapf(err, perr.ErrorCodeIO, "read %s", name)
}
