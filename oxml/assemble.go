package oxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/midbel/tabkit/layout"
	"github.com/midbel/tabkit/value"
)

var ErrAssembly = errors.New("inconsistent document")

// Source is the data rendered into a document. Every row yielded by Rows
// holds exactly one value per column.
type Source interface {
	Columns() []string
	Rows() iter.Seq[[]value.Value]
	Dimension() layout.Dimension
}

type Option func(*Document)

func WithLogger(logger zerolog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

type Fragment struct {
	Name string
	Path string
	Data []byte

	kind partKind
}

// Document is the set of fragments of a single table spreadsheet.
type Document struct {
	graph  *graph
	logger zerolog.Logger

	workbook  xmlWorkbook
	styles    xmlStyleSheet
	worksheet xmlWorksheet
	table     xmlTable
}

// Assemble builds the four fragments of the document for src. The header row
// of the table is only described by the table definition: the first row of
// the worksheet is the first row of src.
func Assemble(src Source, options ...Option) (*Document, error) {
	g, err := buildGraph()
	if err != nil {
		return nil, err
	}
	doc := Document{
		graph:  g,
		logger: zerolog.Nop(),
	}
	for _, o := range options {
		o(&doc)
	}
	if err := doc.assembleWorkbook(); err != nil {
		return nil, err
	}
	doc.assembleStyles()
	if err := doc.assembleWorksheet(src); err != nil {
		return nil, err
	}
	doc.assembleTable(src)
	return &doc, nil
}

// Ref gives the range covered by the table, header row included.
func (d *Document) Ref() string {
	return d.table.Ref
}

// Fragments gives the encoded fragments in the order they have been built.
func (d *Document) Fragments() ([]Fragment, error) {
	list := []struct {
		Kind partKind
		Root any
	}{
		{Kind: partWorkbook, Root: &d.workbook},
		{Kind: partStyles, Root: &d.styles},
		{Kind: partWorksheet, Root: &d.worksheet},
		{Kind: partTable, Root: &d.table},
	}
	var frags []Fragment
	for _, i := range list {
		p := d.graph.find(i.Kind)
		if p == nil {
			return nil, fmt.Errorf("%w: %s part missing", ErrAssembly, i.Kind)
		}
		data, err := encodeXML(i.Root)
		if err != nil {
			return nil, err
		}
		d.logger.Debug().
			Str("fragment", i.Kind.String()).
			Str("path", p.Path).
			Int("size", len(data)).
			Msg("fragment encoded")
		frags = append(frags, Fragment{
			Name: i.Kind.String(),
			Path: p.Path,
			Data: data,
			kind: i.Kind,
		})
	}
	return frags, nil
}

func (d *Document) assembleWorkbook() error {
	id, err := d.graph.resolve(d.graph.find(partWorkbook), idSheet, partWorksheet)
	if err != nil {
		return err
	}
	d.workbook = xmlWorkbook{
		Xmlns:    typeMainUrl,
		RelXmlns: typeRelUrl,
		Sheets: []xmlSheet{
			{
				Name:  SheetName,
				Index: SheetIndex,
				Id:    id,
			},
		},
	}
	return nil
}

func (d *Document) assembleStyles() {
	d.styles = fixedStyles()
}

func (d *Document) assembleWorksheet(src Source) error {
	id, err := d.graph.resolve(d.graph.find(partWorksheet), idTable, partTable)
	if err != nil {
		return err
	}
	var (
		dim   = src.Dimension()
		spans = layout.RangeReference("1", strconv.FormatInt(dim.Columns, 10))
		line  int64
	)
	d.worksheet = xmlWorksheet{
		Xmlns:    typeMainUrl,
		RelXmlns: typeRelUrl,
	}
	for row := range src.Rows() {
		line++
		if int64(len(row)) != dim.Columns {
			return fmt.Errorf("%w: row %d has %d cells, %d expected", ErrAssembly, line, len(row), dim.Columns)
		}
		rx := xmlRow{
			Line:  line,
			Spans: spans,
		}
		for col, v := range row {
			if v == nil {
				return fmt.Errorf("%w: no value at %s", ErrAssembly, layout.CellReference(int64(col), line))
			}
			cx := xmlCell{
				Ref:   layout.CellReference(int64(col), line),
				Style: CellStyleIndex,
				Type:  v.Wire(),
				Value: v.Literal(),
			}
			rx.Cells = append(rx.Cells, cx)
		}
		d.worksheet.Data.Rows = append(d.worksheet.Data.Rows, rx)
	}
	d.worksheet.TableParts.Parts = append(d.worksheet.TableParts.Parts, xmlTablePart{
		Id: id,
	})
	d.worksheet.TableParts.Count = len(d.worksheet.TableParts.Parts)
	return nil
}

func (d *Document) assembleTable(src Source) {
	var (
		columns = src.Columns()
		dim     = src.Dimension()
		ref     = tableRange(int64(len(columns)), dim.Lines)
	)
	d.table = xmlTable{
		Xmlns:          typeMainUrl,
		Id:             TableId,
		Name:           TableName,
		DisplayName:    TableName,
		Ref:            ref,
		HeaderRowDxfId: HeaderRowDxfId,
		DataDxfId:      DataDxfId,
		AutoFilter: xmlAutoFilter{
			Ref: ref,
		},
		Style: xmlTableStyleInfo{
			Name:           TableStyle,
			ShowRowStripes: 1,
		},
	}
	for i, c := range columns {
		cx := xmlTableColumn{
			Id:        i + 1,
			Name:      c,
			DataDxfId: ColumnDxfId,
		}
		d.table.Columns.Columns = append(d.table.Columns.Columns, cx)
	}
	d.table.Columns.Count = len(d.table.Columns.Columns)
}

// tableRange gives the range of a table with a header row followed by lines
// rows of data.
func tableRange(columns, lines int64) string {
	dim := layout.Dimension{
		Lines:   lines + 1,
		Columns: columns,
	}
	return layout.Bounding(dim).String()
}

func encodeXML(root any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
