package lexgen

import (
	"io"

	"golang.org/x/exp/mmap"
)

// Source is a random-access range of input bytes, owned exclusively by the
// input-stack frame that wraps it (spec section 4.1). Close releases
// whatever the Source holds — a memory mapping, a descriptor, nothing at
// all for an in-memory buffer — and is called automatically when the frame
// is popped.
type Source interface {
	Bytes() []byte
	Close() error
}

// FileSource is a Source backed by a memory-mapped file, using
// golang.org/x/exp/mmap for the underlying random-access mapping — the
// "memory-mapped file primitive" the lexer core treats as an external
// collaborator (spec section 1). The file is mapped once at push time and
// its content copied into a single contiguous buffer so the match loop can
// hand substrings of it straight to regexp without further I/O; the mapping
// itself is what makes that initial read cheap and avoids the kernel
// buffering a sequential os.File read would otherwise impose.
type FileSource struct {
	r    *mmap.ReaderAt
	data []byte
}

// NewFileSource mmaps path and reads it into an addressable byte range.
func NewFileSource(path string) (*FileSource, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	buf := make([]byte, r.Len())
	if _, err := r.ReadAt(buf, 0); err != nil && err != io.EOF {
		r.Close()
		return nil, &SourceError{Path: path, Err: err}
	}
	return &FileSource{r: r, data: buf}, nil
}

func (f *FileSource) Bytes() []byte { return f.data }
func (f *FileSource) Close() error  { return f.r.Close() }

// BufferSource is a Source over an in-memory byte slice, e.g. for included
// text produced programmatically rather than read from a file. Closing it
// is a no-op: there is no external resource to release.
type BufferSource struct {
	data []byte
}

// NewBufferSource wraps data (not copied) as a Source.
func NewBufferSource(data []byte) *BufferSource {
	return &BufferSource{data: data}
}

// NewStringSource wraps s as a Source.
func NewStringSource(s string) *BufferSource {
	return &BufferSource{data: []byte(s)}
}

func (b *BufferSource) Bytes() []byte { return b.data }
func (b *BufferSource) Close() error  { return nil }
