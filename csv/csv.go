package csv

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

var ErrEmpty = errors.New("no header line")

// Open reads a table from file. The first line gives the names of the
// columns, the values of the other lines are inferred from their text.
func Open(file string, comma byte) (*table.Table, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadTable(r, comma)
}

func ReadTable(r io.Reader, comma byte) (*table.Table, error) {
	rs := NewReader(r)
	if comma != 0 {
		rs.Comma = comma
	}
	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	tb, err := table.New(header)
	if err != nil {
		return nil, err
	}
	rs.FieldsPerLine = len(header)
	for line := 2; ; line++ {
		fields, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row := make([]value.Value, len(fields))
		for i, f := range fields {
			row[i] = value.Infer(f)
		}
		if err := tb.AddRow(row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return tb, nil
}

// WriteTable writes the columns of t followed by its rows.
func WriteTable(w io.Writer, t *table.Table, comma byte) error {
	ws := NewWriter(w)
	if comma != 0 {
		ws.Comma = comma
	}
	if err := ws.Write(t.Columns()); err != nil {
		return err
	}
	for r := range t.Rows() {
		line := make([]string, len(r))
		for i := range r {
			line[i] = r[i].String()
		}
		if err := ws.Write(line); err != nil {
			return err
		}
	}
	ws.Flush()
	return ws.Error()
}

const (
	quote = '"'
	nl    = '\n'
	cr    = '\r'
	space = ' '
)

var errUnterminated = errors.New("unterminated")

type Reader struct {
	inner         *bufio.Reader
	Comma         byte
	FieldsPerLine int

	atEOF bool
}

func NewReader(r io.Reader) *Reader {
	rs := Reader{
		inner: bufio.NewReader(r),
		Comma: ',',
	}
	return &rs
}

func (r *Reader) Done() bool {
	return r.atEOF
}

func (r *Reader) ReadAll() ([][]string, error) {
	var all [][]string
	for {
		rs, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		all = append(all, rs)
	}
	return all, nil
}

func (r *Reader) Read() ([]string, error) {
	if r.Done() {
		return nil, io.EOF
	}
	line, err := r.inner.ReadBytes(nl)
	if len(line) == 0 && errors.Is(err, io.EOF) {
		r.atEOF = true
		return nil, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if isBlank(line) {
		return r.Read()
	}
	var res []string
	for i := 0; ; {
		var (
			field []byte
			size  int
			err   error
		)
		if i < len(line) && line[i] == quote {
			for {
				field, size, err = r.readQuotedField(line[i:])
				if err == nil {
					break
				}
				if !errors.Is(err, errUnterminated) {
					return nil, err
				}
				next, err1 := r.inner.ReadBytes(nl)
				if len(next) == 0 {
					return nil, err
				}
				if err1 != nil && !errors.Is(err1, io.EOF) {
					return nil, err1
				}
				line = append(line, next...)
			}
		} else {
			field, size, err = r.readDefaultField(line[i:])
			if err != nil {
				return nil, err
			}
		}
		res = append(res, string(field))
		i += size
		if i >= len(line) {
			break
		}
		if line[i] == r.Comma {
			i++
			continue
		}
		if line[i] == cr {
			i++
			if i >= len(line) || line[i] != nl {
				return nil, fmt.Errorf("carriage return only allow followed by newline")
			}
		}
		if line[i] != nl {
			return nil, fmt.Errorf("unexpected character after field")
		}
		break
	}
	if r.FieldsPerLine > 0 && len(res) != r.FieldsPerLine {
		return nil, fmt.Errorf("invalid number of fields")
	}
	return res, nil
}

func (r *Reader) readQuotedField(line []byte) ([]byte, int, error) {
	var (
		pos    = 1
		offset = pos
	)
	for offset < len(line) {
		if line[offset] == quote {
			if offset+1 < len(line) && line[offset+1] == quote {
				offset += 2
				continue
			}
			field := bytes.ReplaceAll(line[pos:offset], []byte{quote, quote}, []byte{quote})
			return field, offset + 1, nil
		}
		offset++
	}
	return nil, 0, errUnterminated
}

func (r *Reader) readDefaultField(line []byte) ([]byte, int, error) {
	var offset int
	for offset < len(line) {
		switch line[offset] {
		case quote:
			return nil, 0, fmt.Errorf("unexpected quote")
		case r.Comma, cr, nl:
			return line[:offset], offset, nil
		default:
			offset++
		}
	}
	return line[:offset], offset, nil
}

func isBlank(line []byte) bool {
	return len(bytes.TrimRight(line, "\r\n")) == 0
}

type Writer struct {
	inner *bufio.Writer

	ForceQuote bool
	UseCRLF    bool
	Comma      byte
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: ',',
	}
	return &ws
}

func (w *Writer) WriteAll(data [][]string) error {
	for _, d := range data {
		if err := w.Write(d); err != nil {
			return err
		}
	}
	return w.inner.Flush()
}

func (w *Writer) Write(line []string) error {
	var err error
	for i, str := range line {
		if i > 0 {
			if err = w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
		if w.needQuotes(str) {
			err = w.writeQuoted(str)
		} else {
			_, err = w.inner.WriteString(str)
		}
		if err != nil {
			return err
		}
	}
	if w.UseCRLF {
		err = w.inner.WriteByte(cr)
		if err != nil {
			return err
		}
	}
	err = w.inner.WriteByte(nl)
	return err
}

func (w *Writer) Flush() {
	w.inner.Flush()
}

func (w *Writer) Error() error {
	_, err := w.inner.Write(nil)
	return err
}

func (w *Writer) writeQuoted(str string) error {
	if err := w.inner.WriteByte(quote); err != nil {
		return err
	}
	var err error
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == quote {
			w.inner.WriteByte(c)
			err = w.inner.WriteByte(c)
		} else if c == cr {
			if w.UseCRLF {
				err = w.inner.WriteByte(c)
			}
		} else if c == nl {
			if w.UseCRLF {
				w.inner.WriteByte(cr)
			}
			err = w.inner.WriteByte(c)
		} else {
			err = w.inner.WriteByte(c)
		}
		if err != nil {
			return err
		}
	}
	err = w.inner.WriteByte(quote)
	return err
}

func (w *Writer) needQuotes(str string) bool {
	if w.ForceQuote {
		return w.ForceQuote
	}
	if str == "" {
		return false
	}
	if str[0] == space {
		return true
	}
	for _, c := range []byte{w.Comma, quote, cr, nl, space} {
		ix := strings.IndexByte(str, c)
		if ix >= 0 {
			return true
		}
	}
	return false
}
