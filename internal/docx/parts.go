package docx

import (
	"fmt"
	"strings"
)

// Static and templated OOXML package parts. Only the main namespaces the
// emitted markup actually uses are declared.

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`
const relNS = `xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles ` + wordNS + `>
<w:style w:type="table" w:styleId="TableGrid">
<w:name w:val="Table Grid"/>
<w:tblPr>
<w:tblBorders>
<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>
<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>
<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>
<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>
<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>
<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>
</w:tblBorders>
</w:tblPr>
</w:style>
</w:styles>`

func (d *Document) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	if d.footerText != "" {
		b.WriteString(`
<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>`)
	}
	b.WriteString(`
</Types>`)
	return b.String()
}

func (d *Document) documentRelsXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	if d.footerText != "" {
		b.WriteString(`
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>`)
	}
	b.WriteString(`
</Relationships>`)
	return b.String()
}

func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document ` + wordNS + ` ` + relNS + `><w:body>`)
	b.WriteString(d.body.String())

	b.WriteString("<w:sectPr>")
	if d.footerText != "" {
		b.WriteString(`<w:footerReference w:type="default" r:id="rId2"/>`)
	}
	b.WriteString(fmt.Sprintf(
		`<w:pgMar w:top="%d" w:bottom="%d" w:left="%d" w:right="%d"/>`,
		d.marginTop, d.marginBottom, d.marginLeft, d.marginRight))
	b.WriteString("</w:sectPr></w:body></w:document>")
	return b.String()
}

func (d *Document) footerXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:ftr ` + wordNS + `><w:p><w:r>`)
	if d.footerSize > 0 {
		b.WriteString(fmt.Sprintf(`<w:rPr><w:sz w:val="%d"/></w:rPr>`, d.footerSize))
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escape(d.footerText))
	b.WriteString(`</w:t></w:r></w:p></w:ftr>`)
	return b.String()
}
