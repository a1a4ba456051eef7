package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
)

var slidePart = regexp.MustCompile(`^ppt/slides/slide\d+\.xml$`)

// countPPTX counts slide parts; hidden slides are printed too.
func countPPTX(data []byte) (int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, f := range zr.File {
		if slidePart.MatchString(f.Name) {
			n++
		}
	}
	if n == 0 {
		return 0, errors.New("no slides")
	}
	return n, nil
}

type appProperties struct {
	Pages int `xml:"Pages"`
}

// countDOCX reads the page count Word stores in docProps/app.xml when it
// last saved the file. There is no layout engine to recompute it.
func countDOCX(data []byte) (int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	for _, f := range zr.File {
		if f.Name != "docProps/app.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return 0, err
		}
		b, err := io.ReadAll(io.LimitReader(rc, 1<<20))
		_ = rc.Close()
		if err != nil {
			return 0, err
		}
		var props appProperties
		if err := xml.Unmarshal(b, &props); err != nil {
			return 0, fmt.Errorf("app.xml: %w", err)
		}
		if props.Pages <= 0 {
			return 0, errors.New("app.xml has no page count")
		}
		return props.Pages, nil
	}
	return 0, errors.New("docProps/app.xml missing")
}
