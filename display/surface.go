package display

import (
	"io"
	"strings"
)

// Surface is the backing output of a Console.
type Surface interface {
	Append(b *Block)
	Remove(b *Block)
}

// Buffer is an in-memory Surface that keeps the blocks currently shown.
type Buffer struct {
	blocks []*Block
}

func (s *Buffer) Append(b *Block) { s.blocks = append(s.blocks, b) }

func (s *Buffer) Remove(b *Block) {
	for i, x := range s.blocks {
		if x == b {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return
		}
	}
}

// String renders the blocks currently on the buffer.
func (s *Buffer) String() string {
	var b strings.Builder
	for _, blk := range s.blocks {
		b.WriteString(blk.render())
	}
	return b.String()
}

// WriterSurface streams appended blocks to W. Written output cannot be taken
// back, so Remove is a no-op. The first write error is kept and stops
// further writes.
type WriterSurface struct {
	W   io.Writer
	err error
}

// NewWriter returns a WriterSurface writing to w.
func NewWriter(w io.Writer) *WriterSurface { return &WriterSurface{W: w} }

func (s *WriterSurface) Append(b *Block) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.W, b.render())
}

func (s *WriterSurface) Remove(*Block) {}

// Err returns the first write error, if any.
func (s *WriterSurface) Err() error { return s.err }
