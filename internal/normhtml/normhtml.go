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

// Package normhtml provides functions for comparing and checking
// rendered HTML fragments in tests.
package normhtml

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips insignificant output differences from HTML:
// runs of whitespace outside <pre> collapse to a single space,
// whitespace around block-level tags is removed,
// and attributes are sorted by name.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	last := html.StartTagToken
	var lastTag string
	inPre := false
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := tok.Text()
			if !inPre {
				data = whitespaceRE.ReplaceAll(data, []byte(" "))
				if last == html.StartTagToken && isBlockTag(lastTag) {
					data = bytes.TrimLeftFunc(data, unicode.IsSpace)
				} else if last == html.EndTagToken && isBlockTag(lastTag) {
					data = bytes.TrimSpace(data)
				}
			}
			output = append(output, htmlEscaper.Replace(bytes.Clone(data))...)
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = false
			} else if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "</"...)
			output = append(output, tag...)
			output = append(output, ">"...)
			lastTag = tag
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = true
			}
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "<"...)
			output = append(output, tag...)
			if hasAttr {
				var attrs []htmlAttribute
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, htmlAttribute{string(k), string(v)})
					if !more {
						break
					}
				}
				sort.Slice(attrs, func(i, j int) bool {
					return attrs[i].key < attrs[j].key
				})
				for _, attr := range attrs {
					output = append(output, " "...)
					output = append(output, attr.key...)
					if attr.value != "" {
						output = append(output, `="`...)
						output = append(output, html.EscapeString(attr.value)...)
						output = append(output, `"`...)
					}
				}
			}
			output = append(output, ">"...)
			lastTag = tag
		case html.CommentToken:
			output = append(output, tok.Raw()...)
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

// CheckBalanced reports an error if the given fragment's
// rendered elements are not properly nested.
// Only the elements that the NeXt renderer produces are checked;
// any other tags are ignored, since source text may contain arbitrary HTML.
func CheckBalanced(b []byte) error {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var stack []atom.Atom
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			if len(stack) > 0 {
				return fmt.Errorf("unclosed <%v>", stack[len(stack)-1])
			}
			return nil
		case html.StartTagToken:
			name, _ := tok.TagName()
			if a := atom.Lookup(name); isRenderedTag(a) && a != atom.Img {
				stack = append(stack, a)
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			a := atom.Lookup(name)
			if !isRenderedTag(a) {
				continue
			}
			if len(stack) == 0 {
				return fmt.Errorf("unexpected </%v>", a)
			}
			if top := stack[len(stack)-1]; top != a {
				return fmt.Errorf("</%v> closes <%v>", a, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

var blockTags = map[string]struct{}{
	atom.Body.String():  {},
	atom.Div.String():   {},
	atom.H1.String():    {},
	atom.H2.String():    {},
	atom.Li.String():    {},
	atom.P.String():     {},
	atom.Pre.String():   {},
	atom.Table.String(): {},
	atom.Td.String():    {},
	atom.Tr.String():    {},
	atom.Ul.String():    {},
}

func isBlockTag(tag string) bool {
	_, ok := blockTags[tag]
	return ok
}

func isRenderedTag(a atom.Atom) bool {
	switch a {
	case atom.P, atom.H1, atom.H2, atom.Div, atom.Pre, atom.Code, atom.Img,
		atom.Ul, atom.Li, atom.Table, atom.Tr, atom.Td, atom.Strong:
		return true
	default:
		return false
	}
}
