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

// A Cursor describes a [Block] encountered during [Walk].
type Cursor struct {
	block  *Block
	parent *Block
	index  int
}

// Block returns the current [Block].
func (c *Cursor) Block() *Block {
	return c.block
}

// Parent returns the parent of the current [Block]
// (as returned by [*Cursor.Block])
// or nil if the block is at the top level of the document.
func (c *Cursor) Parent() *Block {
	return c.parent
}

// Index returns the position of the current [Block]
// among its siblings.
func (c *Cursor) Index() int {
	return c.index
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each block before the block's children are traversed (pre-order).
	// If Pre returns false, no children are traversed, and Post is not called for that block.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each block after the block's children are traversed (post-order).
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses the document's blocks recursively in source order,
// calling [WalkOptions.Pre] and [WalkOptions.Post].
func Walk(doc *Document, opts *WalkOptions) {
	type walkFrame struct {
		block  *Block
		parent *Block
		index  int
		post   bool
	}

	stack := make([]walkFrame, 0, len(doc.Blocks))
	for i := len(doc.Blocks) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{block: doc.Blocks[i], index: i})
	}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cursor.block = curr.block
		cursor.parent = curr.parent
		cursor.index = curr.index
		if curr.post {
			if opts.Post != nil && !opts.Post(cursor) {
				break
			}
			continue
		}

		if opts.Pre != nil && !opts.Pre(cursor) {
			continue
		}
		curr.post = true
		stack = append(stack, curr)
		for i := curr.block.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{
				parent: curr.block,
				block:  curr.block.Child(i),
				index:  i,
			})
		}
	}
}
