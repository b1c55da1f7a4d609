// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

//go:generate stringer -type=BlockKind -output=ast_string.go

package nxt

// A Document is the result of parsing NeXt source.
type Document struct {
	// Title is the value of the last @title{...} directive
	// or the parser's default title if there was none.
	Title string
	// HasTitle reports whether the source contained a @title{...} directive.
	HasTitle bool
	// Blocks holds the top-level blocks in source order.
	Blocks []*Block
}

// A Block is a structural element in a NeXt document.
type Block struct {
	kind      BlockKind
	level     int
	text      string
	startLine int
	children  []*Block
}

// Kind returns the type of block node
// or zero if the node is nil.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Text returns the block's unformatted content.
// For headings, paragraphs, list items, and table cells,
// this is the text that will be passed through [FormatInline].
// For notes, code blocks, and images,
// this is the content extracted from between the directive's braces.
// Container blocks (lists, tables, and rows) have no text.
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// HeadingLevel returns 1 or 2 for a [HeadingKind] block
// and 0 for any other block.
func (b *Block) HeadingLevel() int {
	if b.Kind() != HeadingKind {
		return 0
	}
	return b.level
}

// StartLine returns the 1-based line number
// where the block begins in the source,
// or 0 if the node is nil.
func (b *Block) StartLine() int {
	if b == nil {
		return 0
	}
	return b.startLine
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (b *Block) ChildCount() int {
	if b == nil {
		return 0
	}
	return len(b.children)
}

// Child returns the i'th child of the node.
func (b *Block) Child(i int) *Block {
	return b.children[i]
}

// BlockKind is an enumeration of values returned by [*Block.Kind].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	HeadingKind
	NoteKind
	CodeKind
	ImageKind
	ListKind
	ListItemKind
	TableKind
	TableRowKind
	TableCellKind
)

// IsContainer reports whether blocks of the kind hold other blocks
// instead of text.
func (kind BlockKind) IsContainer() bool {
	return kind == ListKind || kind == TableKind || kind == TableRowKind
}

// acceptsInline reports whether the block's text
// is passed through the inline formatter when rendered.
func (kind BlockKind) acceptsInline() bool {
	switch kind {
	case ParagraphKind, HeadingKind, NoteKind, ListItemKind, TableCellKind:
		return true
	default:
		return false
	}
}
