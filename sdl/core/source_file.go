// Package core provides core types shared across the schema definition layer.
package core

// SourceFile represents a DDL script with its content.
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
