package oxml

import (
	"archive/zip"
	"compress/flate"
	"io"
	"os"
)

type writer struct {
	writer *zip.Writer

	err error
}

func newWriter(w io.Writer) *writer {
	z := writer{
		writer: zip.NewWriter(w),
	}
	z.writer.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	return &z
}

// Write assembles the document of src and writes the resulting package to w.
// Errors returned by w are given back as is.
func Write(w io.Writer, src Source, options ...Option) error {
	doc, err := Assemble(src, options...)
	if err != nil {
		return err
	}
	z := newWriter(w)
	if err := z.WriteDocument(doc); err != nil {
		z.writer.Close()
		return err
	}
	return z.Close()
}

// WriteFile is like Write but creates or truncates file. The file is closed
// whatever the outcome.
func WriteFile(file string, src Source, options ...Option) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := Write(w, src, options...); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (z *writer) WriteDocument(doc *Document) error {
	frags, err := doc.Fragments()
	if err != nil {
		return err
	}
	z.writeContentTypes(doc.graph)
	z.writeRelations(doc.graph)
	for _, f := range frags {
		z.writeFragment(f)
		if p := doc.graph.find(f.kind); p != nil {
			z.writeRelationsForPart(p)
		}
	}
	return z.err
}

func (z *writer) Close() error {
	if err := z.writer.Close(); err != nil && z.err == nil {
		z.err = err
	}
	return z.err
}

func (z *writer) writeContentTypes(g *graph) {
	if z.invalid() {
		return
	}
	root := xmlContentTypes{
		Xmlns: typeCtUrl,
		Defaults: []xmlDefault{
			{
				Extension:   "rels",
				ContentType: mimeRels,
			},
			{
				Extension:   "xml",
				ContentType: mimeXml,
			},
		},
	}
	for _, p := range g.parts {
		ox := xmlOverride{
			PartName:    "/" + p.Path,
			ContentType: p.Mime,
		}
		root.Overrides = append(root.Overrides, ox)
	}
	z.encodeXML("[Content_Types].xml", &root)
}

func (z *writer) writeRelations(g *graph) {
	if z.invalid() {
		return
	}
	wb := g.find(partWorkbook)
	root := xmlRelations{
		Xmlns: typePkgRelUrl,
		Relations: []xmlRelation{
			{
				Id:     "rId1",
				Type:   wb.Type,
				Target: wb.Path,
			},
		},
	}
	z.encodeXML("_rels/.rels", &root)
}

func (z *writer) writeRelationsForPart(p *part) {
	if z.invalid() || len(p.links) == 0 {
		return
	}
	root := xmlRelations{
		Xmlns: typePkgRelUrl,
	}
	for _, k := range p.Links() {
		rx := xmlRelation{
			Id:     k.Id,
			Type:   k.Target.Type,
			Target: p.Target(k.Target),
		}
		root.Relations = append(root.Relations, rx)
	}
	z.encodeXML(p.Rels(), &root)
}

func (z *writer) writeFragment(frag Fragment) {
	if z.invalid() {
		return
	}
	w, err := z.writer.Create(frag.Path)
	if err != nil {
		z.err = err
		return
	}
	_, z.err = w.Write(frag.Data)
}

func (z *writer) encodeXML(name string, ptr any) {
	data, err := encodeXML(ptr)
	if err != nil {
		z.err = err
		return
	}
	z.writeFragment(Fragment{
		Path: name,
		Data: data,
	})
}

func (z *writer) invalid() bool {
	return z.err != nil
}
