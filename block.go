package seqscrape

import (
	"strconv"
	"strings"
)

// BlockKind identifies the type of a content block.
type BlockKind int

// Block kinds produced by an Extractor.
const (
	BlockHeading BlockKind = iota + 1
	BlockParagraph
	BlockQuote
	BlockListItem
)

// String returns a lower-case name for the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockQuote:
		return "quote"
	case BlockListItem:
		return "list_item"
	default:
		return "unknown"
	}
}

// Block is one normalized unit of extracted article content.
type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`

	// Level is the heading level (1-6). Only set for BlockHeading.
	Level int `json:"level,omitempty"`

	// Ordered and Index describe list items. Index is 1-based and restarts
	// for every list; it is zero for unordered items.
	Ordered bool `json:"ordered,omitempty"`
	Index   int  `json:"index,omitempty"`
}

// Heading returns a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Quote returns a quote block.
func Quote(text string) Block {
	return Block{Kind: BlockQuote, Text: text}
}

// BulletItem returns an unordered list item.
func BulletItem(text string) Block {
	return Block{Kind: BlockListItem, Text: text}
}

// NumberedItem returns an ordered list item with a 1-based index.
func NumberedItem(index int, text string) Block {
	return Block{Kind: BlockListItem, Ordered: true, Index: index, Text: text}
}

// Bullet is the marker placed before unordered list items.
const Bullet = "•"

// String renders the block as a single line of simplified markup.
func (b Block) String() string {
	switch b.Kind {
	case BlockHeading:
		return strings.Repeat("#", b.Level) + " " + b.Text
	case BlockQuote:
		return "> " + b.Text
	case BlockListItem:
		if b.Ordered {
			return strconv.Itoa(b.Index) + ". " + b.Text
		}
		return Bullet + " " + b.Text
	default:
		return b.Text
	}
}

// FormatBlocks renders blocks and joins them with a blank line.
// Returns an empty string when there are no blocks.
func FormatBlocks(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}

	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n\n")
}
