package oxml

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// relationship ids of the document
const (
	idSheet  = "rId1"
	idTable  = "rId2"
	idStyles = "rId3"
)

type partKind int8

const (
	partWorkbook partKind = iota + 1
	partStyles
	partWorksheet
	partTable
)

func (k partKind) String() string {
	switch k {
	case partWorkbook:
		return "workbook"
	case partStyles:
		return "styles"
	case partWorksheet:
		return "worksheet"
	case partTable:
		return "table"
	default:
		return "unknown"
	}
}

type link struct {
	Id     string
	Target *part
}

type part struct {
	Kind partKind
	// location inside the package, without leading slash
	Path string
	Mime string
	// type of the relationship pointing to this part
	Type string

	links []link
}

// Rels gives the location of the relationship part owned by p.
func (p *part) Rels() string {
	dir, file := path.Split(p.Path)
	return path.Join(dir, "_rels", file+".rels")
}

// Target gives the location of other relative to the directory of p.
func (p *part) Target(other *part) string {
	var (
		from = strings.Split(path.Dir(p.Path), "/")
		to   = strings.Split(other.Path, "/")
		ix   int
	)
	for ix < len(from) && ix < len(to)-1 && from[ix] == to[ix] {
		ix++
	}
	var parts []string
	for range from[ix:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[ix:]...)
	return strings.Join(parts, "/")
}

func (p *part) Links() []link {
	return slices.Clone(p.links)
}

// graph holds the parts of a document and the relationships between them.
// Parts are created in dependency order: a part can only point to parts
// created before it was linked.
type graph struct {
	parts []*part
}

func (g *graph) create(kind partKind, file, mime, rel string) *part {
	p := part{
		Kind: kind,
		Path: file,
		Mime: mime,
		Type: rel,
	}
	g.parts = append(g.parts, &p)
	return &p
}

func (g *graph) link(owner *part, id string, target *part) error {
	if !slices.Contains(g.parts, owner) {
		return fmt.Errorf("%w: %s not part of document", ErrAssembly, owner.Kind)
	}
	if !slices.Contains(g.parts, target) {
		return fmt.Errorf("%w: %s not created before being linked", ErrAssembly, target.Kind)
	}
	if owner == target {
		return fmt.Errorf("%w: %s can not link to itself", ErrAssembly, owner.Kind)
	}
	ok := slices.ContainsFunc(owner.links, func(k link) bool {
		return k.Id == id
	})
	if ok {
		return fmt.Errorf("%w: %s already used by %s", ErrAssembly, id, owner.Kind)
	}
	owner.links = append(owner.links, link{
		Id:     id,
		Target: target,
	})
	return nil
}

// resolve gives the id under which owner refers to a part of the given kind.
func (g *graph) resolve(owner *part, id string, kind partKind) (string, error) {
	ix := slices.IndexFunc(owner.links, func(k link) bool {
		return k.Id == id
	})
	if ix < 0 {
		return "", fmt.Errorf("%w: %s not defined by %s", ErrAssembly, id, owner.Kind)
	}
	if k := owner.links[ix].Target.Kind; k != kind {
		return "", fmt.Errorf("%w: %s points to %s, not %s", ErrAssembly, id, k, kind)
	}
	return id, nil
}

func (g *graph) find(kind partKind) *part {
	ix := slices.IndexFunc(g.parts, func(p *part) bool {
		return p.Kind == kind
	})
	if ix < 0 {
		return nil
	}
	return g.parts[ix]
}

// buildGraph creates the parts of a single sheet document and their
// relationships: workbook, styles, worksheet then table.
func buildGraph() (*graph, error) {
	var (
		g         graph
		workbook  = g.create(partWorkbook, wbBaseDir+"/workbook.xml", mimeWorkbook, typeDocUrl)
		styles    = g.create(partStyles, wbBaseDir+"/styles.xml", mimeStyle, typeStyleUrl)
		worksheet = g.create(partWorksheet, wbBaseDir+"/worksheets/sheet1.xml", mimeWorksheet, typeSheetUrl)
		table     = g.create(partTable, wbBaseDir+"/tables/table1.xml", mimeTable, typeTableUrl)
	)
	if err := g.link(workbook, idSheet, worksheet); err != nil {
		return nil, err
	}
	if err := g.link(workbook, idStyles, styles); err != nil {
		return nil, err
	}
	if err := g.link(worksheet, idTable, table); err != nil {
		return nil, err
	}
	return &g, nil
}
