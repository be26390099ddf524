// Package display is a small debug console. A Console renders values with
// grampa.Stringify into blocks of text on a Surface and remembers the blocks
// it added so they can be cleared again.
package display

import (
	"strings"

	"github.com/eapache/queue"

	"github.com/emilianobovetti/grampa"
)

// BlockKind distinguishes text lines from line breaks.
type BlockKind int

const (
	TextBlock BlockKind = iota
	BreakBlock
)

// Block is one unit of console output.
type Block struct {
	Kind BlockKind
	Text string
}

func (b *Block) render() string {
	if b.Kind == BreakBlock {
		return "\n"
	}
	return b.Text + "\n"
}

// Console owns a Surface and the ordered list of blocks it has put there.
// A Console is not safe for concurrent use.
type Console struct {
	// Limit caps the number of blocks kept on the surface; the oldest are
	// removed first. Zero means no limit.
	Limit int
	// Stringifier renders arguments; nil uses the package default.
	Stringifier *grampa.Stringifier

	surface Surface
	blocks  *queue.Queue
}

// New returns a Console drawing on s. A nil s gets a fresh Buffer.
func New(s Surface) *Console {
	if s == nil {
		s = &Buffer{}
	}
	return &Console{surface: s, blocks: queue.New()}
}

func (c *Console) init() {
	if c.surface == nil {
		c.surface = &Buffer{}
	}
	if c.blocks == nil {
		c.blocks = queue.New()
	}
}

// Surface returns the backing surface.
func (c *Console) Surface() Surface {
	c.init()
	return c.surface
}

// Show clears the console and adds args as a single line.
func (c *Console) Show(args ...any) *Block {
	c.Empty()
	return c.Add(args...)
}

// Add renders every argument and adds them, space separated, as one text
// block. With no arguments it adds a line break.
func (c *Console) Add(args ...any) *Block {
	if len(args) == 0 {
		return c.AddBreak()
	}
	st := c.Stringifier
	if st == nil {
		st = &grampa.Stringifier{}
	}
	parts := make([]string, 0, len(args))
	grampa.ForEach(args, func(x any, _ int, _ grampa.List) {
		parts = append(parts, st.Stringify(x))
	})
	return c.AddBlock(&Block{Kind: TextBlock, Text: strings.Join(parts, " ")})
}

// AddBreak adds a line break.
func (c *Console) AddBreak() *Block {
	return c.AddBlock(&Block{Kind: BreakBlock})
}

// AddBlock appends b to the surface and records it.
func (c *Console) AddBlock(b *Block) *Block {
	c.init()
	c.surface.Append(b)
	c.blocks.Add(b)
	for c.Limit > 0 && c.blocks.Length() > c.Limit {
		c.surface.Remove(c.blocks.Remove().(*Block))
	}
	return b
}

// Empty removes every recorded block from the surface.
func (c *Console) Empty() {
	c.init()
	for c.blocks.Length() > 0 {
		c.surface.Remove(c.blocks.Remove().(*Block))
	}
}

// Blocks returns the recorded blocks, oldest first.
func (c *Console) Blocks() []*Block {
	c.init()
	out := make([]*Block, c.blocks.Length())
	for i := range out {
		out[i] = c.blocks.Get(i).(*Block)
	}
	return out
}
