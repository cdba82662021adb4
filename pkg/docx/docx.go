// Package docx fills Word templates and post-processes the rendered XML.
//
// Templates use text/template actions in the document text, e.g. {{.clientName}}.
// A table row containing {{tr range .rows}} or {{tr end}} is replaced by the bare
// action, so the rows between them repeat once per element.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
)

// parts that may carry placeholders
var templatedPart = regexp.MustCompile(`^word/(document|header\d*|footer\d*)\.xml$`)

const mainPart = "word/document.xml"

type part struct {
	header zip.FileHeader
	data   []byte
}

// Document is a rendered docx held in memory
type Document struct {
	parts []*part
}

// Render loads the template at path and executes it against data.
// Missing keys are an error rather than "<no value>".
func Render(path string, data map[string]any) (*Document, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	escaped := escapeValue(data)
	for _, p := range doc.parts {
		if !templatedPart.MatchString(p.header.Name) {
			continue
		}
		out, err := execute(p.header.Name, p.data, escaped)
		if err != nil {
			return nil, err
		}
		p.data = out
	}
	return doc, nil
}

// Open reads a docx without rendering it
func Open(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer r.Close()

	doc := &Document{}
	found := false
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		if f.Name == mainPart {
			found = true
		}
		doc.parts = append(doc.parts, &part{header: f.FileHeader, data: data})
	}
	if !found {
		return nil, fmt.Errorf("%s: missing %s", filepath.Base(path), mainPart)
	}
	return doc, nil
}

func execute(name string, xml []byte, data any) ([]byte, error) {
	src := hoistRowActions(healPlaceholders(string(xml)))

	tpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// XML returns the main document part
func (d *Document) XML() string {
	for _, p := range d.parts {
		if p.header.Name == mainPart {
			return string(p.data)
		}
	}
	return ""
}

func (d *Document) setXML(s string) {
	for _, p := range d.parts {
		if p.header.Name == mainPart {
			p.data = []byte(s)
			return
		}
	}
}

// Text returns the visible text of the main part, one line per paragraph
func (d *Document) Text() string {
	var b strings.Builder
	for _, para := range paragraph.FindAllString(d.XML(), -1) {
		b.WriteString(runText(para))
		b.WriteByte('\n')
	}
	return b.String()
}

// Save writes the document to path, keeping the original part order
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write streams the document as a zip archive
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, p := range d.parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.header.Name,
			Method:   zip.Deflate,
			Modified: p.header.Modified,
		})
		if err != nil {
			return err
		}
		if _, err := fw.Write(p.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

// escapeValue XML-escapes every string reachable from v
func escapeValue(v any) any {
	switch t := v.(type) {
	case string:
		return xmlReplacer.Replace(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = escapeValue(val)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = escapeValue(val)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, val := range t {
			out[i] = escapeValue(val).(map[string]any)
		}
		return out
	case []map[string]string:
		out := make([]map[string]any, len(t))
		for i, val := range t {
			out[i] = escapeValue(val).(map[string]any)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = escapeValue(val)
		}
		return out
	default:
		return v
	}
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
