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

// Package nxt provides a parser and HTML renderer for NeXt,
// a small line-oriented markup language.
//
// A NeXt document is a sequence of lines.
// Each line (after trimming surrounding whitespace) is one of:
//
//	@title{X}     sets the document title to X
//	# X           level-1 heading
//	## X          level-2 heading
//	@note{X}      callout block
//	@code{X}      verbatim code block
//	@image{X}     image whose source is X
//	- X           list item
//	| a | b |     table row
//	(blank)       closes any open list or table
//	anything else paragraph
//
// Inside headings, paragraphs, notes, list items, and table cells,
// **X** renders as bold text and $X$ renders as a math span
// for client-side rendering with KaTeX.
//
// Parsing never fails:
// malformed markup degrades to plain text.
package nxt

import (
	"bytes"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/text/unicode/norm"
)

// untitledDocument is the title of a document without a @title{...} directive
// when no other default has been configured.
const untitledDocument = "Untitled Document"

var sourceNormalizer = bytereplacer.New(
	"\r\n", "\n",
	"\x00", "\ufffd",
)

// A Parser converts NeXt source into a [Document].
// The zero value is ready to use.
// A Parser holds no state between calls to Parse,
// so it is safe to use from multiple goroutines concurrently.
type Parser struct {
	// DefaultTitle is the title given to documents
	// that do not contain a @title{...} directive.
	// If DefaultTitle is empty, "Untitled Document" is used.
	// See [DefaultTitle] for localized alternatives.
	DefaultTitle string
}

// Parse parses NeXt source with the default options for [Parser].
func Parse(source []byte) *Document {
	return new(Parser).Parse(source)
}

// Parse parses a complete NeXt document.
func (p *Parser) Parse(source []byte) *Document {
	doc := &Document{Title: p.DefaultTitle}
	if doc.Title == "" {
		doc.Title = untitledDocument
	}
	bp := &blockParser{doc: doc}
	text := normalizeSource(source)
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}
		bp.lineno++
		bp.addLine(strings.TrimSpace(line))
	}
	bp.closeContainer()
	return doc
}

// normalizeSource converts CRLF line endings to LF,
// replaces NUL bytes with the Unicode replacement character,
// and converts the text to Unicode Normalization Form C.
func normalizeSource(source []byte) string {
	if bytes.IndexByte(source, '\r') >= 0 || bytes.IndexByte(source, 0) >= 0 {
		// Replace may modify its argument.
		source = sourceNormalizer.Replace(bytes.Clone(source))
	}
	return norm.NFC.String(string(source))
}
