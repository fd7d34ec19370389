// Package document hosts relative time labels inside an HTML document.
// Elements are discovered with CSS selectors and keep every attribute; only
// their text content is replaced.
package document

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"ago/internal/core/relative"
	"ago/internal/storage"
)

// Document is a parsed HTML document whose elements can be tracked.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}
	return &Document{doc: doc}, nil
}

// Load reads an HTML document from disk.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open document")
	}
	defer file.Close()

	document, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return document, nil
}

// QueryAll returns every element matching selector in document order.
func (document *Document) QueryAll(selector string) []relative.Element {
	document.mu.Lock()
	defer document.mu.Unlock()

	var elements []relative.Element
	document.doc.Find(selector).Each(func(_ int, selection *goquery.Selection) {
		elements = append(elements, &Element{document: document, selection: selection})
	})
	return elements
}

// Render writes the serialized document.
func (document *Document) Render(w io.Writer) error {
	document.mu.Lock()
	defer document.mu.Unlock()

	for _, node := range document.doc.Nodes {
		if err := html.Render(w, node); err != nil {
			return errors.Wrap(err, "render html")
		}
	}
	return nil
}

// Save atomically replaces path with the serialized document.
func (document *Document) Save(path string) error {
	var buffer bytes.Buffer
	if err := document.Render(&buffer); err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(path, buffer.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Element is a single HTML element tracked by a relative.Formatter.
type Element struct {
	document  *Document
	selection *goquery.Selection
}

// Attr returns an attribute of the element.
func (element *Element) Attr(name string) (string, bool) {
	element.document.mu.Lock()
	defer element.document.mu.Unlock()
	return element.selection.Attr(name)
}

// SetText replaces the text content of the element.
func (element *Element) SetText(text string) {
	element.document.mu.Lock()
	defer element.document.mu.Unlock()
	element.selection.SetText(text)
}

func (element *Element) text() string {
	element.document.mu.Lock()
	defer element.document.mu.Unlock()
	return element.selection.Text()
}
