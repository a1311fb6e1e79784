package oxml

// Constants shared by every generated document. Consumers inspect these
// fields so they are not configurable.
const (
	SheetName  = "Report"
	SheetIndex = 1

	TableId    = 1
	TableName  = "Table1"
	TableStyle = "TableStyleMedium15"

	// index into cellXfs used by every cell of the worksheet
	CellStyleIndex = 1
	// indices into dxfs referenced by the table definition
	HeaderRowDxfId = 1
	DataDxfId      = 0
	ColumnDxfId    = 2
)

const (
	fontSize   = "11"
	fontName   = "Calibri"
	fontFamily = "2"
	fontScheme = "minor"
	fontTheme  = 1

	dxfCount = 4
)

var fillPatterns = []string{"none", "gray125"}

// fixedStyles builds the style sheet written in every document: 1 font, 2
// fills, 1 border, 2 cell formats (plain, centered) and 4 identical
// differential formats used by the table definition.
func fixedStyles() xmlStyleSheet {
	root := xmlStyleSheet{
		Xmlns:      typeMainUrl,
		McXmlns:    typeMcUrl,
		X14acXmlns: typeX14acUrl,
		Ignorable:  "x14ac",
	}

	var font xmlFont
	font.Size.Val = fontSize
	font.Color.Theme = fontTheme
	font.Name.Val = fontName
	font.Family.Val = fontFamily
	font.Scheme.Val = fontScheme
	root.Fonts.Fonts = append(root.Fonts.Fonts, font)
	root.Fonts.Count = len(root.Fonts.Fonts)
	root.Fonts.KnownFonts = 1

	for _, p := range fillPatterns {
		var fill xmlFill
		fill.Pattern.Type = p
		root.Fills.Fills = append(root.Fills.Fills, fill)
	}
	root.Fills.Count = len(root.Fills.Fills)

	root.Borders.Borders = append(root.Borders.Borders, xmlBorder{})
	root.Borders.Count = len(root.Borders.Borders)

	centered := xmlCellFormat{
		ApplyAlignment: 1,
		Alignment: &xmlAlignment{
			Horizontal: "center",
		},
	}
	root.CellFormats.Formats = append(root.CellFormats.Formats, xmlCellFormat{}, centered)
	root.CellFormats.Count = len(root.CellFormats.Formats)

	for i := 0; i < dxfCount; i++ {
		var dxf xmlDiffFormat
		dxf.Alignment.Horizontal = "center"
		dxf.Alignment.Vertical = "bottom"
		root.DiffFormats.Formats = append(root.DiffFormats.Formats, dxf)
	}
	root.DiffFormats.Count = len(root.DiffFormats.Formats)
	return root
}
