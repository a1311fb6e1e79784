package oxml

import (
	"encoding/xml"
)

const wbBaseDir = "xl"

const (
	typeDocUrl    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	typeSheetUrl  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	typeStyleUrl  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	typeTableUrl  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/table"
	typeMainUrl   = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	typeRelUrl    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	typePkgRelUrl = "http://schemas.openxmlformats.org/package/2006/relationships"
	typeCtUrl     = "http://schemas.openxmlformats.org/package/2006/content-types"
	typeMcUrl     = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	typeX14acUrl  = "http://schemas.microsoft.com/office/spreadsheetml/2009/9/ac"
)

const (
	mimeRels      = "application/vnd.openxmlformats-package.relationships+xml"
	mimeXml       = "application/xml"
	mimeWorkbook  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	mimeWorksheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	mimeStyle     = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	mimeTable     = "application/vnd.openxmlformats-officedocument.spreadsheetml.table+xml"
)

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlRelations struct {
	XMLName   xml.Name      `xml:"Relationships"`
	Xmlns     string        `xml:"xmlns,attr"`
	Relations []xmlRelation `xml:"Relationship"`
}

type xmlRelation struct {
	XMLName xml.Name `xml:"Relationship"`
	Target  string   `xml:",attr"`
	Id      string   `xml:",attr"`
	Type    string   `xml:",attr"`
}

type xmlWorkbook struct {
	XMLName  xml.Name   `xml:"workbook"`
	Xmlns    string     `xml:"xmlns,attr"`
	RelXmlns string     `xml:"xmlns:r,attr"`
	Sheets   []xmlSheet `xml:"sheets>sheet"`
}

type xmlSheet struct {
	XMLName xml.Name `xml:"sheet"`
	Name    string   `xml:"name,attr"`
	Index   int      `xml:"sheetId,attr"`
	Id      string   `xml:"r:id,attr"`
}

type xmlWorksheet struct {
	XMLName    xml.Name      `xml:"worksheet"`
	Xmlns      string        `xml:"xmlns,attr"`
	RelXmlns   string        `xml:"xmlns:r,attr"`
	Data       xmlSheetData  `xml:"sheetData"`
	TableParts xmlTableParts `xml:"tableParts"`
}

type xmlSheetData struct {
	Rows []xmlRow `xml:"row"`
}

type xmlRow struct {
	XMLName xml.Name  `xml:"row"`
	Line    int64     `xml:"r,attr"`
	Spans   string    `xml:"spans,attr,omitempty"`
	Cells   []xmlCell `xml:"c"`
}

type xmlCell struct {
	XMLName xml.Name `xml:"c"`
	Ref     string   `xml:"r,attr"`
	Style   int      `xml:"s,attr"`
	Type    string   `xml:"t,attr"`
	Value   string   `xml:"v"`
}

type xmlTableParts struct {
	Count int            `xml:"count,attr"`
	Parts []xmlTablePart `xml:"tablePart"`
}

type xmlTablePart struct {
	Id string `xml:"r:id,attr"`
}

type xmlTable struct {
	XMLName        xml.Name          `xml:"table"`
	Xmlns          string            `xml:"xmlns,attr"`
	Id             int               `xml:"id,attr"`
	Name           string            `xml:"name,attr"`
	DisplayName    string            `xml:"displayName,attr"`
	Ref            string            `xml:"ref,attr"`
	TotalsRowShown int               `xml:"totalsRowShown,attr"`
	HeaderRowDxfId int               `xml:"headerRowDxfId,attr"`
	DataDxfId      int               `xml:"dataDxfId,attr"`
	AutoFilter     xmlAutoFilter     `xml:"autoFilter"`
	Columns        xmlTableColumns   `xml:"tableColumns"`
	Style          xmlTableStyleInfo `xml:"tableStyleInfo"`
}

type xmlAutoFilter struct {
	Ref string `xml:"ref,attr"`
}

type xmlTableColumns struct {
	Count   int              `xml:"count,attr"`
	Columns []xmlTableColumn `xml:"tableColumn"`
}

type xmlTableColumn struct {
	Id        int    `xml:"id,attr"`
	Name      string `xml:"name,attr"`
	DataDxfId int    `xml:"dataDxfId,attr"`
}

type xmlTableStyleInfo struct {
	Name              string `xml:"name,attr"`
	ShowFirstColumn   int    `xml:"showFirstColumn,attr"`
	ShowLastColumn    int    `xml:"showLastColumn,attr"`
	ShowRowStripes    int    `xml:"showRowStripes,attr"`
	ShowColumnStripes int    `xml:"showColumnStripes,attr"`
}

type xmlStyleSheet struct {
	XMLName     xml.Name       `xml:"styleSheet"`
	Xmlns       string         `xml:"xmlns,attr"`
	McXmlns     string         `xml:"xmlns:mc,attr"`
	X14acXmlns  string         `xml:"xmlns:x14ac,attr"`
	Ignorable   string         `xml:"mc:Ignorable,attr"`
	Fonts       xmlFonts       `xml:"fonts"`
	Fills       xmlFills       `xml:"fills"`
	Borders     xmlBorders     `xml:"borders"`
	CellFormats xmlCellFormats `xml:"cellXfs"`
	DiffFormats xmlDiffFormats `xml:"dxfs"`
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlFonts struct {
	Count      int       `xml:"count,attr"`
	KnownFonts int       `xml:"x14ac:knownFonts,attr"`
	Fonts      []xmlFont `xml:"font"`
}

type xmlColor struct {
	Theme int `xml:"theme,attr"`
}

type xmlFont struct {
	Size   xmlVal   `xml:"sz"`
	Color  xmlColor `xml:"color"`
	Name   xmlVal   `xml:"name"`
	Family xmlVal   `xml:"family"`
	Scheme xmlVal   `xml:"scheme"`
}

type xmlFills struct {
	Count int       `xml:"count,attr"`
	Fills []xmlFill `xml:"fill"`
}

type xmlFill struct {
	Pattern struct {
		Type string `xml:"patternType,attr"`
	} `xml:"patternFill"`
}

type xmlBorders struct {
	Count   int         `xml:"count,attr"`
	Borders []xmlBorder `xml:"border"`
}

type xmlBorder struct {
	Left     struct{} `xml:"left"`
	Right    struct{} `xml:"right"`
	Top      struct{} `xml:"top"`
	Bottom   struct{} `xml:"bottom"`
	Diagonal struct{} `xml:"diagonal"`
}

type xmlCellFormats struct {
	Count   int             `xml:"count,attr"`
	Formats []xmlCellFormat `xml:"xf"`
}

type xmlCellFormat struct {
	NumFmtId       int           `xml:"numFmtId,attr"`
	FontId         int           `xml:"fontId,attr"`
	FillId         int           `xml:"fillId,attr"`
	BorderId       int           `xml:"borderId,attr"`
	XfId           int           `xml:"xfId,attr"`
	ApplyAlignment int           `xml:"applyAlignment,attr,omitempty"`
	Alignment      *xmlAlignment `xml:"alignment"`
}

type xmlAlignment struct {
	Horizontal string `xml:"horizontal,attr"`
}

type xmlDiffFormats struct {
	Count   int             `xml:"count,attr"`
	Formats []xmlDiffFormat `xml:"dxf"`
}

type xmlDiffFormat struct {
	Alignment struct {
		Horizontal      string `xml:"horizontal,attr"`
		Vertical        string `xml:"vertical,attr"`
		TextRotation    int    `xml:"textRotation,attr"`
		WrapText        int    `xml:"wrapText,attr"`
		Indent          int    `xml:"indent,attr"`
		JustifyLastLine int    `xml:"justifyLastLine,attr"`
		ShrinkToFit     int    `xml:"shrinkToFit,attr"`
		ReadingOrder    int    `xml:"readingOrder,attr"`
	} `xml:"alignment"`
}
