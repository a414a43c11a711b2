// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// sampleDump mimics the structure of a pages-articles export, default
// namespace included.
const sampleDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.11/" xml:lang="he">
  <siteinfo>
    <sitename>ויקיפדיה</sitename>
  </siteinfo>
  <page>
    <title>Alpha</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>11</id>
      <text>Alpha body text.</text>
    </revision>
  </page>
  <page>
    <title>Beta</title>
    <ns>0</ns>
    <id>2</id>
    <redirect title="Alpha" />
    <revision>
      <id>12</id>
      <text>#REDIRECT [[Alpha]]</text>
    </revision>
  </page>
  <page>
    <title>Gamma</title>
    <ns>0</ns>
    <id>3</id>
    <revision>
      <id>13</id>
    </revision>
  </page>
</mediawiki>`

func writeDump(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReader_Next(t *testing.T) {
	r, err := Open(writeDump(t, "sample.xml", sampleDump))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	alpha, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if alpha.Index != 0 {
		t.Errorf("index = %d, want 0", alpha.Index)
	}
	if alpha.Title != "Alpha" {
		t.Errorf("title = %q, want %q", alpha.Title, "Alpha")
	}
	if alpha.ID != 1 {
		t.Errorf("id = %d, want 1", alpha.ID)
	}
	if alpha.Redirect {
		t.Error("Alpha should not be a redirect")
	}
	if !alpha.HasText || alpha.Text != "Alpha body text." {
		t.Errorf("text = %q (hasText=%v), want body", alpha.Text, alpha.HasText)
	}
	if !alpha.Complete() {
		t.Error("Alpha should be complete")
	}

	beta, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if beta.Index != 1 {
		t.Errorf("index = %d, want 1", beta.Index)
	}
	if !beta.Redirect {
		t.Error("Beta should be a redirect")
	}
	if beta.RedirectTo != "Alpha" {
		t.Errorf("redirect target = %q, want %q", beta.RedirectTo, "Alpha")
	}

	gamma, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if gamma.Index != 2 {
		t.Errorf("index = %d, want 2", gamma.Index)
	}
	if gamma.HasText {
		t.Error("Gamma has no <text> element, HasText should be false")
	}
	if gamma.Complete() {
		t.Error("Gamma should be incomplete")
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReader_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xml.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sampleDump)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var count int
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		count++
	}
	if count != 3 {
		t.Errorf("pages = %d, want 3", count)
	}
}

func TestReader_MalformedXML(t *testing.T) {
	malformed := `<mediawiki>
  <page>
    <title>Broken</title>
</mediawiki>`

	r, err := Open(writeDump(t, "broken.xml", malformed))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	_, err = r.Next()
	if err == nil || err == io.EOF {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
