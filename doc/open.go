package doc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/tabkit/csv"
	"github.com/midbel/tabkit/manifest"
	"github.com/midbel/tabkit/table"
)

var ErrUnsupported = errors.New("unsupported format")

type Format int

const (
	CSV Format = 1 << iota
	Manifest
	OXML
	ODS
	Unknown
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case Manifest:
		return "manifest"
	case OXML:
		return "oxml"
	case ODS:
		return "ods"
	default:
		return "unknown"
	}
}

// Open loads a table from file whatever its format. Spreadsheet packages are
// detected but can not be used as input.
func Open(file string, comma byte) (*table.Table, error) {
	format, err := Detect(file)
	if err != nil {
		return nil, err
	}
	return OpenFormat(file, format, comma)
}

func OpenFormat(file string, format Format, comma byte) (*table.Table, error) {
	switch format {
	case CSV:
		return csv.Open(file, comma)
	case Manifest:
		return manifest.Open(file)
	default:
		return nil, fmt.Errorf("%s: %w (%s)", file, ErrUnsupported, format)
	}
}

func Detect(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return Manifest, nil
	default:
	}
	ok, err := isZip(file)
	if err != nil {
		return Unknown, err
	}
	if ok {
		return detectZip(file)
	}
	return CSV, nil
}

func detectZip(file string) (Format, error) {
	z, err := zip.OpenReader(file)
	if err != nil {
		return Unknown, err
	}
	defer z.Close()
	for _, f := range z.File {
		switch f.Name {
		case "xl/workbook.xml", "[Content_Types].xml":
			return OXML, nil
		case "mimetype":
			if isOpenDocument(f) {
				return ODS, nil
			}
		default:
		}
	}
	return Unknown, nil
}

func isOpenDocument(f *zip.File) bool {
	r, err := f.Open()
	if err != nil {
		return false
	}
	defer r.Close()

	buf, _ := io.ReadAll(r)
	return string(buf) == "application/vnd.oasis.opendocument.spreadsheet"
}

var magicZipBytes = [][]byte{
	{0x50, 0x4b, 0x03, 0x04},
	{0x50, 0x4b, 0x05, 0x06},
	{0x50, 0x4b, 0x07, 0x08},
}

func isZip(file string) (bool, error) {
	r, err := os.Open(file)
	if err != nil {
		return false, err
	}
	defer r.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	for _, mzb := range magicZipBytes {
		if bytes.Equal(magic, mzb) {
			return true, nil
		}
	}
	return false, nil
}
