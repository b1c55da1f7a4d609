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

// Package format provides a function to format a NeXt document
// that is equivalent to the original source.
package format

import (
	"io"

	"zombiezen.com/go/nxt"
)

// Format writes the given document as NeXt source to the given writer.
// The output renders to the same HTML and has the same title as doc.
// Formatting already formatted source produces the same output.
func Format(w io.Writer, doc *nxt.Document) error {
	ww := &errWriter{w: w}
	if doc.HasTitle {
		writeDirective(ww, "title", doc.Title)
	}
	nxt.Walk(doc, &nxt.WalkOptions{
		Pre: func(c *nxt.Cursor) bool {
			return preBlock(ww, c)
		},
		Post: func(c *nxt.Cursor) bool {
			postBlock(ww, c)
			return ww.err == nil
		},
	})
	return ww.err
}

func preBlock(w *errWriter, cursor *nxt.Cursor) (descend bool) {
	curr := cursor.Block()
	if cursor.Parent() == nil && w.hasWritten {
		// Separate top-level blocks so that adjacent lists or tables
		// are not merged.
		w.WriteString("\n")
	}
	switch curr.Kind() {
	case nxt.ParagraphKind:
		w.WriteString(curr.Text())
	case nxt.HeadingKind:
		if curr.HeadingLevel() == 2 {
			w.WriteString("## ")
		} else {
			w.WriteString("# ")
		}
		w.WriteString(curr.Text())
	case nxt.NoteKind:
		writeDirective(w, "note", curr.Text())
		return false
	case nxt.CodeKind:
		writeDirective(w, "code", curr.Text())
		return false
	case nxt.ImageKind:
		writeDirective(w, "image", curr.Text())
		return false
	case nxt.ListItemKind:
		w.WriteString("- ")
		w.WriteString(curr.Text())
	case nxt.TableRowKind:
		w.WriteString("|")
	case nxt.TableCellKind:
		w.WriteString(" ")
		w.WriteString(curr.Text())
		w.WriteString(" |")
	}
	return true
}

func postBlock(w *errWriter, cursor *nxt.Cursor) {
	switch cursor.Block().Kind() {
	case nxt.ParagraphKind, nxt.HeadingKind, nxt.ListItemKind, nxt.TableRowKind:
		w.WriteString("\n")
	}
}

func writeDirective(w *errWriter, name, content string) {
	w.WriteString("@")
	w.WriteString(name)
	w.WriteString("{")
	w.WriteString(content)
	w.WriteString("}\n")
}

type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}
