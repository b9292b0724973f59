// Package core provides core types shared by the RON parser and decoder.
package core

// SourceFile represents a source text with its originating identifier. The
// path is used only for diagnostic headers; "string" is conventional for
// in-memory input.
type SourceFile struct {
	Path string
	Data string
}

// NewSourceFile creates a new SourceFile.
func NewSourceFile(path, data string) SourceFile {
	return SourceFile{
		Path: path,
		Data: data,
	}
}
