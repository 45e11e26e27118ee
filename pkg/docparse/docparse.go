// Package docparse extracts plain text from uploaded meeting documents.
package docparse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FromTxt decodes a plain text document
func FromTxt(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text file is not valid UTF-8")
	}
	return string(data), nil
}

// FromWord extracts the paragraph text of a .docx archive. Legacy binary
// .doc files are not a zip container and are rejected.
func FromWord(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a docx archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("docx archive has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer rc.Close()

	return decodeDocumentXML(rc)
}

// decodeDocumentXML walks WordprocessingML and collects text runs, one line
// per paragraph
func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		b      strings.Builder
		inText bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br", "tab":
				b.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}

// FromPDF extracts the text content of a PDF. The file goes through a
// relaxed validate/extract cycle in a temp directory, then each page content
// stream is decoded for its text show operators.
func FromPDF(data []byte) (string, error) {
	tmpDir, err := os.MkdirTemp("", "docparse-pdf-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	inFile := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(inFile, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write temp pdf: %w", err)
	}

	outDir := filepath.Join(tmpDir, "content")
	if err := os.MkdirAll(outDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create content dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ExtractContentFile(inFile, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("failed to extract pdf content: %w", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to read content dir: %w", err)
	}
	sortByPageNumber(entries)

	var b strings.Builder
	for _, entry := range entries {
		raw, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			return "", fmt.Errorf("failed to read page content: %w", err)
		}
		page := decodeContentStream(raw)
		if page != "" {
			b.WriteString(page)
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String()), nil
}

var pageNumberRe = regexp.MustCompile(`(\d+)\D*$`)

// sortByPageNumber orders extracted content files by their trailing page
// number so page 10 does not sort before page 2
func sortByPageNumber(entries []os.DirEntry) {
	pageOf := func(name string) int {
		m := pageNumberRe.FindStringSubmatch(name)
		if m == nil {
			return 0
		}
		n, _ := strconv.Atoi(m[1])
		return n
	}
	sort.Slice(entries, func(i, j int) bool {
		return pageOf(entries[i].Name()) < pageOf(entries[j].Name())
	})
}

// decodeContentStream collects the literal strings of text show operators
// from a page content stream. This covers simply encoded PDFs; hex strings
// and CID fonts are out of scope.
func decodeContentStream(raw []byte) string {
	var (
		b        strings.Builder
		i        int
		lastText bool
	)
	for i < len(raw) {
		c := raw[i]
		if c != '(' {
			// paragraph-ish break at end of text object
			if c == 'E' && i+1 < len(raw) && raw[i+1] == 'T' && lastText {
				b.WriteString("\n")
				lastText = false
			}
			i++
			continue
		}

		i++
		var (
			s     []byte
			depth = 1
		)
		for i < len(raw) && depth > 0 {
			switch raw[i] {
			case '\\':
				if i+1 < len(raw) {
					s = append(s, unescapePDFChar(raw[i+1]))
					i += 2
					continue
				}
				i++
			case '(':
				depth++
				s = append(s, raw[i])
				i++
			case ')':
				depth--
				if depth > 0 {
					s = append(s, raw[i])
				}
				i++
			default:
				s = append(s, raw[i])
				i++
			}
		}

		if len(s) > 0 && utf8.Valid(s) {
			if lastText {
				b.WriteString(" ")
			}
			b.Write(s)
			lastText = true
		}
	}
	return strings.TrimSpace(b.String())
}

func unescapePDFChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}
