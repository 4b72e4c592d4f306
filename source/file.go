package source

import (
	"fmt"
	"sort"
)

// File is an immutable UTF-8 source buffer plus the line-start offsets
// accumulated while scanning it. Positions are reconstructed from a byte
// offset by binary search over those offsets rather than carried redundantly
// by every token, following the accumulator design of a lexer that reports
// "add a line here" as it scans.
type File struct {
	id    FileID
	name  string
	data  []byte
	lines []int // lines[i] is the byte offset at which line i+1 begins; lines[0] == 0
}

// NewFile creates a File for the given name and contents. The returned File
// always has at least one line (offset 0), even for empty contents.
func NewFile(id FileID, name string, data []byte) *File {
	return &File{id: id, name: name, data: data, lines: []int{0}}
}

func (f *File) ID() FileID     { return f.id }
func (f *File) Name() string   { return f.name }
func (f *File) Bytes() []byte  { return f.data }
func (f *File) Len() int       { return len(f.data) }
func (f *File) String() string { return string(f.data) }

// AddLine records that a new line begins at the given byte offset. Callers
// (the lexer) must call this once per '\n' encountered, with strictly
// increasing offsets.
func (f *File) AddLine(offset int) {
	if offset <= f.lines[len(f.lines)-1] || offset > len(f.data) {
		panic(fmt.Sprintf("source: invalid line offset %d (file length %d, last line offset %d)",
			offset, len(f.data), f.lines[len(f.lines)-1]))
	}
	f.lines = append(f.lines, offset)
}

// PosAt reconstructs a full Pos from a byte offset into this file.
func (f *File) PosAt(offset int) Pos {
	line := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Pos{
		File:   f.id,
		Line:   line + 1,
		Column: offset - f.lines[line] + 1,
		Offset: offset,
	}
}
