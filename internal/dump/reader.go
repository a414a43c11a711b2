// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dump streams page records out of a MediaWiki XML export.
// It reads the multi-gigabyte pages-articles dumps published at
// https://dumps.wikimedia.org/ one page at a time, without ever holding
// the document in memory.
package dump

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noamKasper/HebrewOCR/pkg/types"
)

// Reader iterates the <page> elements of a dump in document order.
type Reader struct {
	f     *os.File
	gz    *gzip.Reader
	dec   *xml.Decoder
	index int
}

// Open opens a dump file for streaming. Compression is chosen by file
// extension: .gz and .bz2 are decompressed on the fly, anything else is
// read as plain XML.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}

	r := &Reader{f: f}
	var src io.Reader = f

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip dump: %w", err)
		}
		r.gz = gz
		src = gz
	case strings.HasSuffix(path, ".bz2"):
		src = bzip2.NewReader(f)
	}

	r.dec = xml.NewDecoder(src)
	return r, nil
}

// pageElement mirrors the subset of the <page> schema the extractor
// needs. Unqualified names match any namespace, like the export's
// default xmlns.
type pageElement struct {
	Title    string `xml:"title"`
	NS       int    `xml:"ns"`
	ID       int64  `xml:"id"`
	Redirect *struct {
		Title string `xml:"title,attr"`
	} `xml:"redirect"`
	Revision *struct {
		Text *string `xml:"text"`
	} `xml:"revision"`
}

// Next returns the next page in the dump, or io.EOF after the last one.
// Malformed XML aborts the stream: the decoder error is returned with
// the byte offset and the Reader is not usable afterwards.
func (r *Reader) Next() (*types.Page, error) {
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("parsing dump at byte %d: %w", r.dec.InputOffset(), err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}

		var pe pageElement
		if err := r.dec.DecodeElement(&pe, &se); err != nil {
			return nil, fmt.Errorf("decoding page at byte %d: %w", r.dec.InputOffset(), err)
		}

		p := &types.Page{
			Index:     r.index,
			ID:        pe.ID,
			Namespace: pe.NS,
			Title:     pe.Title,
		}
		if pe.Redirect != nil {
			p.Redirect = true
			p.RedirectTo = pe.Redirect.Title
		}
		if pe.Revision != nil && pe.Revision.Text != nil {
			p.Text = *pe.Revision.Text
			p.HasText = true
		}

		r.index++
		return p, nil
	}
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.gz != nil {
		r.gz.Close()
	}
	return r.f.Close()
}
