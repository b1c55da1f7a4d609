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

import "strings"

const (
	listItemMarker = "- "
	tableRowMarker = "|"
)

// containerState is the open multi-line container, if any.
// Lists and tables are mutually exclusive.
type containerState int8

const (
	stateNeutral containerState = iota
	stateInList
	stateInTable
)

// blockParser accumulates blocks for a single document.
type blockParser struct {
	doc    *Document
	state  containerState
	lineno int // line number of the line being added
}

// addLine adds a trimmed line to the document.
func (p *blockParser) addLine(line string) {
	if line == "" {
		p.closeContainer()
		return
	}

	// A container never swallows a line of a different kind.
	switch {
	case p.state == stateInTable && !strings.HasPrefix(line, tableRowMarker):
		p.closeContainer()
	case p.state == stateInList && !strings.HasPrefix(line, listItemMarker):
		p.closeContainer()
	}

	for _, rule := range lineRules {
		if rule.match(line) {
			rule.add(p, line)
			return
		}
	}
	p.appendLeaf(nil, ParagraphKind, line)
}

// closeContainer closes the open list or table, if any.
func (p *blockParser) closeContainer() {
	p.state = stateNeutral
}

// openContainer returns the open container of the given kind,
// appending a new one to the document if none is open.
func (p *blockParser) openContainer(kind BlockKind) *Block {
	want := stateInList
	if kind == TableKind {
		want = stateInTable
	}
	if p.state == want {
		return p.doc.Blocks[len(p.doc.Blocks)-1]
	}
	p.state = want
	return p.appendLeaf(nil, kind, "")
}

// appendLeaf appends a new block to parent
// or to the document if parent is nil.
func (p *blockParser) appendLeaf(parent *Block, kind BlockKind, text string) *Block {
	b := &Block{
		kind:      kind,
		text:      text,
		startLine: p.lineno,
	}
	if parent == nil {
		p.doc.Blocks = append(p.doc.Blocks, b)
	} else {
		parent.children = append(parent.children, b)
	}
	return b
}

// A lineRule recognizes one kind of line.
type lineRule struct {
	match func(line string) bool
	add   func(p *blockParser, line string)
}

// lineRules is the ordered set of line kinds.
// The first rule that matches a line wins;
// lines that match no rule are paragraphs.
var lineRules = []lineRule{
	// Title.
	{
		match: hasPrefix("@title{"),
		add: func(p *blockParser, line string) {
			p.doc.Title = extract(line)
			p.doc.HasTitle = true
		},
	},

	// Headings.
	{
		match: hasPrefix("# "),
		add: func(p *blockParser, line string) {
			p.appendLeaf(nil, HeadingKind, line[len("# "):]).level = 1
		},
	},
	{
		match: hasPrefix("## "),
		add: func(p *blockParser, line string) {
			p.appendLeaf(nil, HeadingKind, line[len("## "):]).level = 2
		},
	},

	// Directives.
	{
		match: hasPrefix("@note{"),
		add: func(p *blockParser, line string) {
			p.appendLeaf(nil, NoteKind, extract(line))
		},
	},
	{
		match: hasPrefix("@code{"),
		add: func(p *blockParser, line string) {
			p.appendLeaf(nil, CodeKind, extract(line))
		},
	},
	{
		match: hasPrefix("@image{"),
		add: func(p *blockParser, line string) {
			p.appendLeaf(nil, ImageKind, extract(line))
		},
	},

	// Table row.
	{
		match: hasPrefix(tableRowMarker),
		add: func(p *blockParser, line string) {
			table := p.openContainer(TableKind)
			row := p.appendLeaf(table, TableRowKind, "")
			for _, cell := range splitTableRow(line) {
				p.appendLeaf(row, TableCellKind, cell)
			}
		},
	},

	// List item.
	{
		match: hasPrefix(listItemMarker),
		add: func(p *blockParser, line string) {
			list := p.openContainer(ListKind)
			p.appendLeaf(list, ListItemKind, line[len(listItemMarker):])
		},
	},
}

func hasPrefix(prefix string) func(string) bool {
	return func(line string) bool {
		return strings.HasPrefix(line, prefix)
	}
}

// splitTableRow splits a table row into trimmed cells.
// Cells that are empty after trimming are dropped,
// which includes the empty strings produced by leading and trailing delimiters
// as well as any genuinely empty cell.
func splitTableRow(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, tableRowMarker) {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// extract returns the content of a directive line of the form prefix{content}:
// the text strictly between the first '{' and the last '}'.
// extract returns the empty string if there is no '}' after the first '{'.
func extract(line string) string {
	_, rest, ok := strings.Cut(line, "{")
	if !ok {
		return ""
	}
	end := strings.LastIndexByte(rest, '}')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
