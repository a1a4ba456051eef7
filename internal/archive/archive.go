// Package archive lists and reads the entries of an uploaded zip archive.
//
// Names written by Korean Windows archivers are CP949 without the UTF-8
// flag; macOS writes decomposed Hangul. Both are normalized here so the rest
// of the estimator only sees NFC UTF-8 slash paths.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/textx"
)

// DefaultMaxEntryBytes bounds a single decompressed entry.
const DefaultMaxEntryBytes int64 = 256 << 20

var ignoredNames = map[string]bool{
	".ds_store":   true,
	"thumbs.db":   true,
	"desktop.ini": true,
}

type Options struct {
	// MaxEntryBytes caps ReadAll; zero means DefaultMaxEntryBytes.
	MaxEntryBytes int64
}

// Archive is an opened zip archive. Entries are in listing order.
type Archive struct {
	entries []Entry
	closer  io.Closer
}

// Entry is one regular file inside the archive.
type Entry struct {
	Path string
	Name string
	// Ext is the lower-case extension including the dot.
	Ext  string
	Size int64

	file     *zip.File
	maxBytes int64
}

// Open reads the central directory of a zip archive.
func Open(r io.ReaderAt, size int64, opts Options) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrArchiveOpen, err)
	}
	if opts.MaxEntryBytes <= 0 {
		opts.MaxEntryBytes = DefaultMaxEntryBytes
	}

	a := &Archive{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		p := CleanPath(textx.DecodeName(f.Name))
		if p == "" || isMetadata(p) {
			continue
		}
		name := path.Base(p)
		a.entries = append(a.entries, Entry{
			Path:     p,
			Name:     name,
			Ext:      strings.ToLower(path.Ext(name)),
			Size:     int64(f.UncompressedSize64),
			file:     f,
			maxBytes: opts.MaxEntryBytes,
		})
	}
	return a, nil
}

// OpenBytes opens an archive held in memory.
func OpenBytes(b []byte, opts Options) (*Archive, error) {
	return Open(bytes.NewReader(b), int64(len(b)), opts)
}

// OpenFile opens an archive on disk. Close releases the file.
func OpenFile(name string, opts Options) (*Archive, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrArchiveOpen, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrArchiveOpen, err)
	}
	a, err := Open(f, st.Size(), opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	a.closer = f
	return a, nil
}

// Entries returns the regular file entries in listing order.
func (a *Archive) Entries() []Entry {
	return a.entries
}

// Paths returns every entry path in listing order.
func (a *Archive) Paths() []string {
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Path
	}
	return out
}

func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// ReadAll decompresses the entry, refusing entries above the size limit.
func (e Entry) ReadAll() ([]byte, error) {
	if e.file == nil {
		return nil, fmt.Errorf("entry %s: not backed by an archive", e.Path)
	}
	if e.maxBytes > 0 && e.Size > e.maxBytes {
		return nil, fmt.Errorf("entry %s (%d bytes): %w", e.Path, e.Size, common.ErrEntryTooLarge)
	}
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", e.Path, err)
	}
	defer rc.Close()

	r := io.Reader(rc)
	if e.maxBytes > 0 {
		r = io.LimitReader(rc, e.maxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", e.Path, err)
	}
	if e.maxBytes > 0 && int64(len(b)) > e.maxBytes {
		return nil, fmt.Errorf("entry %s: %w", e.Path, common.ErrEntryTooLarge)
	}
	return b, nil
}

// TopFolder is the summary key of the entry: its first path segment, or
// common.RootFolder for files at the archive root.
func (e Entry) TopFolder() string {
	return TopFolder(e.Path)
}

func TopFolder(p string) string {
	i := strings.IndexByte(p, '/')
	if i < 0 {
		return common.RootFolder
	}
	return p[:i]
}

// CleanPath converts an entry name to a relative slash path. It returns ""
// for names that do not denote a file inside the archive.
func CleanPath(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return ""
	}
	p := path.Clean(name)
	if p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return ""
	}
	return p
}

func isMetadata(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if seg == "__MACOSX" {
			return true
		}
	}
	base := path.Base(p)
	return strings.HasPrefix(base, "._") || ignoredNames[strings.ToLower(base)]
}
