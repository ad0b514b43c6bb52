package api

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"strings"
	"unicode/utf8"
)

// extractText pulls searchable text out of an uploaded file, best effort.
// Plain text is read directly, .docx is unzipped and stripped of markup, and
// anything else (PDFs included) yields an empty string rather than an error.
func extractText(path, ext string) string {
	switch ext {
	case ".txt", ".md", ".csv":
		data, err := os.ReadFile(path)
		if err != nil || !utf8.Valid(data) {
			return ""
		}
		return string(data)
	case ".docx":
		return extractDocxText(path)
	}
	return ""
}

// extractDocxText reads word/document.xml from the docx archive and collects
// the character data of every <w:t> element.
func extractDocxText(path string) string {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return ""
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ""
		}
		defer rc.Close()

		var sb strings.Builder
		dec := xml.NewDecoder(rc)
		inText := false
		for {
			tok, err := dec.Token()
			if err != nil {
				break
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local == "t" {
					inText = true
				}
			case xml.EndElement:
				if t.Name.Local == "t" {
					inText = false
				}
				if t.Name.Local == "p" {
					sb.WriteByte('\n')
				}
			case xml.CharData:
				if inText {
					sb.Write(t)
				}
			}
		}
		return strings.TrimSpace(sb.String())
	}
	return ""
}
