// Package hierarchy builds the instruction context of a file: the chain of
// folders from its parent up to the archive root, each with the text that
// folder contributes (its name, its notes' names and their contents).
package hierarchy

import (
	"path"
	"strings"
)

var noteExtensions = map[string]bool{".txt": true, ".text": true, ".md": true}

// IsNote reports whether an entry name is a plain-text instruction note.
func IsNote(name string) bool {
	return noteExtensions[strings.ToLower(path.Ext(name))]
}

// Note is a decoded instruction note.
type Note struct {
	Path string
	Text string
}

// Level is one step of a file's context. Folder is "" for the archive root.
type Level struct {
	Folder  string
	Text    string
	Sibling bool
}

type Option func(*Index)

// WithSiblingNames makes sibling folder names visible as extra levels when
// they pass filter. Siblings are the other children of each ancestor's
// parent; only their names are used, never their notes.
func WithSiblingNames(filter func(name string) bool) Option {
	return func(ix *Index) {
		ix.siblingFilter = filter
	}
}

// Index holds the notes and folder tree of one archive.
type Index struct {
	texts         map[string][]string
	children      map[string][]string
	known         map[string]bool
	siblingFilter func(string) bool
}

// NewIndex indexes the folders of every entry path and the notes found in
// them. Note order within a folder follows the given order.
func NewIndex(paths []string, notes []Note, opts ...Option) *Index {
	ix := &Index{
		texts:    make(map[string][]string),
		children: make(map[string][]string),
		known:    map[string]bool{"": true},
	}
	for _, opt := range opts {
		opt(ix)
	}

	for _, p := range paths {
		ix.addFolder(Dir(p))
	}
	for _, n := range notes {
		dir := Dir(n.Path)
		ix.addFolder(dir)
		name := strings.TrimSuffix(path.Base(n.Path), path.Ext(n.Path))
		ix.texts[dir] = append(ix.texts[dir], name, n.Text)
	}
	return ix
}

func (ix *Index) addFolder(dir string) {
	for dir != "" && !ix.known[dir] {
		ix.known[dir] = true
		parent := Dir(dir)
		ix.children[parent] = append(ix.children[parent], dir)
		dir = parent
	}
}

// BuildContext returns the levels for filePath, immediate parent first and
// the archive root last, followed by sibling levels when enabled.
func (ix *Index) BuildContext(filePath string) []Level {
	var levels []Level
	var chain []string
	for dir := Dir(filePath); ; dir = Dir(dir) {
		chain = append(chain, dir)
		levels = append(levels, Level{Folder: dir, Text: ix.folderText(dir)})
		if dir == "" {
			break
		}
	}

	if ix.siblingFilter == nil {
		return levels
	}
	for _, dir := range chain {
		if dir == "" {
			continue
		}
		for _, sib := range ix.children[Dir(dir)] {
			name := path.Base(sib)
			if sib == dir || !ix.siblingFilter(name) {
				continue
			}
			levels = append(levels, Level{Folder: sib, Text: name, Sibling: true})
		}
	}
	return levels
}

// Texts returns the level texts in order.
func Texts(levels []Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Text
	}
	return out
}

func (ix *Index) folderText(dir string) string {
	parts := make([]string, 0, 1+len(ix.texts[dir]))
	if dir != "" {
		parts = append(parts, path.Base(dir))
	}
	parts = append(parts, ix.texts[dir]...)
	return strings.Join(parts, "\n")
}

// Dir is path.Dir with "" instead of "." for the archive root.
func Dir(p string) string {
	d := path.Dir(strings.TrimSuffix(p, "/"))
	if d == "." || d == "/" {
		return ""
	}
	return d
}
