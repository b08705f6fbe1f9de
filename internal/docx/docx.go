// Package docx emits minimal WordprocessingML documents: styled paragraphs,
// fixed-grid tables, page margins, and a page footer. It covers exactly the
// surface the price protocol export needs; it is not a general OOXML
// library. Documents are packaged as the four-part zip Word expects.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Alignment selects paragraph justification.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// twipsPerCm converts centimeters to twentieths of a point, the unit
// WordprocessingML measures widths and margins in.
const twipsPerCm = 567

// Document accumulates body content and is packaged by Save.
type Document struct {
	body strings.Builder

	marginTop    int
	marginBottom int
	marginLeft   int
	marginRight  int

	footerText string
	footerSize int // half-points
}

// New returns an empty document with Word's default 2.54cm margins.
func New() *Document {
	d := &Document{}
	d.SetPageMarginsCm(2.54, 2.54, 2.54, 2.54)
	return d
}

// SetPageMarginsCm sets the page margins of the single document section.
func (d *Document) SetPageMarginsCm(top, bottom, left, right float64) {
	d.marginTop = cmToTwips(top)
	d.marginBottom = cmToTwips(bottom)
	d.marginLeft = cmToTwips(left)
	d.marginRight = cmToTwips(right)
}

// SetFooter places text in the page footer of every page. sizePt of zero
// keeps Word's default font size.
func (d *Document) SetFooter(text string, sizePt float64) {
	d.footerText = text
	d.footerSize = halfPoints(sizePt)
}

// Run is one formatted stretch of text inside a paragraph.
type Run struct {
	Text string
	Bold bool
	// SizePt is the font size in points; zero keeps the default.
	SizePt float64
}

// AddParagraph appends a paragraph of runs with the given alignment.
func (d *Document) AddParagraph(align Alignment, runs ...Run) {
	d.body.WriteString("<w:p>")
	if pPr := paragraphProps(align); pPr != "" {
		d.body.WriteString(pPr)
	}
	for _, r := range runs {
		d.body.WriteString(runXML(r))
	}
	d.body.WriteString("</w:p>")
}

// AddText appends a plain, default-formatted paragraph.
func (d *Document) AddText(text string) {
	d.AddParagraph("", Run{Text: text})
}

// AddEmptyParagraph appends vertical whitespace.
func (d *Document) AddEmptyParagraph() {
	d.body.WriteString("<w:p/>")
}

// Cell is one table cell: a single-run paragraph with per-cell alignment.
type Cell struct {
	Text  string
	Bold  bool
	Align Alignment
}

// Table accumulates rows; created by AddTable.
type Table struct {
	doc    *Document
	widths []int
}

// AddTable opens a bordered grid table with fixed column widths. Rows are
// appended with AddRow; the table is closed automatically when the next
// body element is added because each row writes directly into the body.
func (d *Document) AddTable(columnWidthsCm []float64) *Table {
	widths := make([]int, len(columnWidthsCm))
	total := 0
	for i, cm := range columnWidthsCm {
		widths[i] = cmToTwips(cm)
		total += widths[i]
	}

	d.body.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/>`)
	d.body.WriteString(fmt.Sprintf(`<w:tblW w:w="%d" w:type="dxa"/>`, total))
	d.body.WriteString(`<w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`)
	for _, w := range widths {
		d.body.WriteString(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, w))
	}
	d.body.WriteString(`</w:tblGrid>`)

	return &Table{doc: d, widths: widths}
}

// AddRow appends one row. Missing trailing cells render empty; extra cells
// beyond the column count are dropped.
func (t *Table) AddRow(cells ...Cell) {
	t.doc.body.WriteString("<w:tr>")
	for i, width := range t.widths {
		var c Cell
		if i < len(cells) {
			c = cells[i]
		}

		t.doc.body.WriteString(fmt.Sprintf(
			`<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr><w:p>`, width))
		if pPr := paragraphProps(c.Align); pPr != "" {
			t.doc.body.WriteString(pPr)
		}
		t.doc.body.WriteString(runXML(Run{Text: c.Text, Bold: c.Bold}))
		t.doc.body.WriteString("</w:p></w:tc>")
	}
	t.doc.body.WriteString("</w:tr>")
}

// Close ends the table element. Must be called before adding further body
// content.
func (t *Table) Close() {
	t.doc.body.WriteString("</w:tbl>")
}

// Save packages the document into w as a .docx zip.
func (d *Document) Save(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", relsXML},
		{"word/document.xml", d.documentXML()},
		{"word/_rels/document.xml.rels", d.documentRelsXML()},
		{"word/styles.xml", stylesXML},
	}
	if d.footerText != "" {
		parts = append(parts, struct {
			name    string
			content string
		}{"word/footer1.xml", d.footerXML()})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create zip part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.content); err != nil {
			return fmt.Errorf("write zip part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx zip: %w", err)
	}
	return nil
}

// Bytes packages the document and returns the .docx content.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paragraphProps(align Alignment) string {
	if align == "" || align == AlignLeft {
		return ""
	}
	return fmt.Sprintf(`<w:pPr><w:jc w:val="%s"/></w:pPr>`, align)
}

func runXML(r Run) string {
	var b strings.Builder
	b.WriteString("<w:r>")

	if r.Bold || r.SizePt > 0 {
		b.WriteString("<w:rPr>")
		if r.Bold {
			b.WriteString("<w:b/>")
		}
		if r.SizePt > 0 {
			b.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/>`, halfPoints(r.SizePt)))
		}
		b.WriteString("</w:rPr>")
	}

	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escape(r.Text))
	b.WriteString("</w:t></w:r>")
	return b.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never fails
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func cmToTwips(cm float64) int {
	return int(cm * twipsPerCm)
}

func halfPoints(pt float64) int {
	return int(pt * 2)
}
