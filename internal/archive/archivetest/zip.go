// Package archivetest builds zip archives in memory for tests.
package archivetest

import (
	"archive/zip"
	"bytes"
	"testing"

	"golang.org/x/text/encoding/korean"
)

// File is one archive member. Dirs end with "/" and carry no data.
type File struct {
	Name string
	Data []byte
	// CP949 stores the name in legacy Korean encoding without the UTF-8 flag.
	CP949 bool
}

// Build writes files into a zip archive in the given order.
func Build(t testing.TB, files ...File) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		name := f.Name
		if f.CP949 {
			enc, err := korean.EUCKR.NewEncoder().String(name)
			if err != nil {
				t.Fatalf("encode %q: %v", name, err)
			}
			name = enc
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, NonUTF8: f.CP949})
		if err != nil {
			t.Fatalf("create %q: %v", f.Name, err)
		}
		if len(f.Data) > 0 {
			if _, err := w.Write(f.Data); err != nil {
				t.Fatalf("write %q: %v", f.Name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
