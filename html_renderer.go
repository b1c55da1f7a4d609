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

package nxt

import (
	"fmt"
	"html"
	"io"

	"golang.org/x/net/html/atom"
)

// Default attribute values used by [HTMLRenderer].
const (
	DefaultNoteClass  = "note"
	DefaultTableClass = "nxt-table"
	DefaultImageClass = "nxt-image"
	DefaultImageAlt   = "NeXt Image"
)

// An HTMLRenderer converts parsed NeXt blocks into HTML.
// The zero value renders with the default attribute values.
//
// # Security considerations
//
// NeXt text is copied into the output without escaping,
// so any HTML in the source is passed through as-is.
// Output generated from untrusted inputs
// should be sent through an HTML sanitizer.
type HTMLRenderer struct {
	// NoteClass is the class attribute of a note's <div> element.
	// If empty, DefaultNoteClass is used.
	NoteClass string
	// TableClass is the class attribute of <table> elements.
	// If empty, DefaultTableClass is used.
	TableClass string
	// ImageClass is the class attribute of <img> elements.
	// If empty, DefaultImageClass is used.
	ImageClass string
	// ImageAlt is the alt attribute of <img> elements.
	// If empty, DefaultImageAlt is used.
	ImageAlt string
}

// Convert parses NeXt source and renders its body as HTML
// using the default options for [Parser] and [HTMLRenderer].
// It returns the HTML body and the document title.
func Convert(source []byte) (body []byte, title string) {
	doc := Parse(source)
	return new(HTMLRenderer).AppendHTML(nil, doc), doc.Title
}

// RenderHTML writes the document's blocks
// to the given writer as HTML
// using the default options for [HTMLRenderer].
// It will return the first error encountered, if any.
func RenderHTML(w io.Writer, doc *Document) error {
	return new(HTMLRenderer).Render(w, doc)
}

// Render writes the document's blocks
// to the given writer as HTML.
// It will return the first error encountered, if any.
func (r *HTMLRenderer) Render(w io.Writer, doc *Document) error {
	var buf []byte
	for _, b := range doc.Blocks {
		buf = r.AppendBlock(buf[:0], b)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("render nxt to html: %w", err)
		}
	}
	return nil
}

// AppendHTML appends the rendered HTML of all the document's blocks to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendHTML(dst []byte, doc *Document) []byte {
	for _, b := range doc.Blocks {
		dst = r.AppendBlock(dst, b)
	}
	return dst
}

// AppendBlock appends the rendered HTML of a block to dst
// and returns the resulting byte slice.
func (r *HTMLRenderer) AppendBlock(dst []byte, block *Block) []byte {
	state := &renderState{
		HTMLRenderer: r,
		dst:          dst,
	}
	state.block(block)
	return state.dst
}

type renderState struct {
	*HTMLRenderer
	dst []byte
}

func (r *renderState) openTagAttr(name atom.Atom) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
}

func (r *renderState) openTag(name atom.Atom) {
	r.openTagAttr(name)
	r.dst = append(r.dst, '>')
}

func (r *renderState) closeTag(name atom.Atom) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, '>')
}

// attr appends an attribute whose value is already safe to place
// inside double quotes.
func (r *renderState) attr(name atom.Atom, value string) {
	r.dst = append(r.dst, ' ')
	r.dst = append(r.dst, name.String()...)
	r.dst = append(r.dst, `="`...)
	r.dst = append(r.dst, value...)
	r.dst = append(r.dst, '"')
}

func (r *renderState) block(block *Block) {
	switch block.Kind() {
	case ParagraphKind:
		r.openTag(atom.P)
		r.inline(block)
		r.closeTag(atom.P)
	case HeadingKind:
		tagName := atom.H1
		if block.HeadingLevel() == 2 {
			tagName = atom.H2
		}
		r.openTag(tagName)
		r.inline(block)
		r.closeTag(tagName)
	case NoteKind:
		r.openTagAttr(atom.Div)
		r.attr(atom.Class, html.EscapeString(orDefault(r.NoteClass, DefaultNoteClass)))
		r.dst = append(r.dst, '>')
		r.inline(block)
		r.closeTag(atom.Div)
	case CodeKind:
		r.openTag(atom.Pre)
		r.openTag(atom.Code)
		r.dst = append(r.dst, block.Text()...)
		r.closeTag(atom.Code)
		r.closeTag(atom.Pre)
	case ImageKind:
		r.openTagAttr(atom.Img)
		r.attr(atom.Src, block.Text())
		r.attr(atom.Class, html.EscapeString(orDefault(r.ImageClass, DefaultImageClass)))
		r.attr(atom.Alt, html.EscapeString(orDefault(r.ImageAlt, DefaultImageAlt)))
		r.dst = append(r.dst, '>')
	case ListKind:
		r.openTag(atom.Ul)
		r.children(block)
		r.closeTag(atom.Ul)
	case ListItemKind:
		r.openTag(atom.Li)
		r.inline(block)
		r.closeTag(atom.Li)
	case TableKind:
		r.openTagAttr(atom.Table)
		r.attr(atom.Class, html.EscapeString(orDefault(r.TableClass, DefaultTableClass)))
		r.dst = append(r.dst, '>')
		r.children(block)
		r.closeTag(atom.Table)
	case TableRowKind:
		r.openTag(atom.Tr)
		r.children(block)
		r.closeTag(atom.Tr)
	case TableCellKind:
		r.openTag(atom.Td)
		r.inline(block)
		r.closeTag(atom.Td)
	}
}

func (r *renderState) children(parent *Block) {
	for i, n := 0, parent.ChildCount(); i < n; i++ {
		r.block(parent.Child(i))
	}
}

func (r *renderState) inline(block *Block) {
	if block.Kind().acceptsInline() {
		r.dst = AppendInline(r.dst, block.Text())
	} else {
		r.dst = append(r.dst, block.Text()...)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
