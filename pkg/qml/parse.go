package qml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const header = `<!DOCTYPE qgis PUBLIC 'http://mrcc.com/qgis.dtd' 'SYSTEM'>` + "\n"

// Parse decodes a QML style document from r.
// Returns ErrMalformed for input that is not well-formed XML or whose root
// element is not <qgis>.
func Parse(r io.Reader) (*Document, error) {
	var doc Document

	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if doc.XMLName.Local != "qgis" {
		return nil, fmt.Errorf("%w: root element is <%s>, expected <qgis>", ErrMalformed, doc.XMLName.Local)
	}

	return &doc, nil
}

// ParseBytes decodes a QML style document from data.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile decodes the QML style document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open style document: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Write serializes the document to w, prefixed with the QGIS doctype header
// the host application emits.
func (d *Document) Write(w io.Writer) error {
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode style document: %w", err)
	}

	return enc.Close()
}

// Bytes serializes the document and returns the encoded bytes.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
