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
	"bytes"
	"strings"
)

const (
	strongDelimiter = "**"
	mathDelimiter   = '$'

	strongOpen  = "<strong>"
	strongClose = "</strong>"

	// Inline math delimiters recognized by KaTeX's auto-render extension.
	mathOpen  = `\(`
	mathClose = `\)`
)

// FormatInline converts bold (**X**) and math ($X$) spans in a line of text
// to HTML and KaTeX markup.
// Unmatched delimiters are kept as literal text.
// FormatInline does not escape HTML.
//
// The output of FormatInline contains no delimiters it would recognize,
// so FormatInline(FormatInline(s)) == FormatInline(s).
func FormatInline(text string) string {
	return string(AppendInline(nil, text))
}

// AppendInline appends the result of [FormatInline] to dst
// and returns the resulting byte slice.
func AppendInline(dst []byte, text string) []byte {
	if !strings.Contains(text, strongDelimiter) && strings.IndexByte(text, mathDelimiter) < 0 {
		return append(dst, text...)
	}
	// Math spans are found in the text after bold spans have been resolved.
	var buf []byte
	if strings.Contains(text, strongDelimiter) {
		buf = appendStrong(make([]byte, 0, len(text)+len(strongOpen)+len(strongClose)), text)
	} else {
		buf = []byte(text)
	}
	return appendMath(dst, buf)
}

// appendStrong replaces pairs of "**" with <strong> tags.
// Delimiters alternate between opening and closing in source order.
// If there is an odd number of delimiters,
// the last one has no partner and is kept as literal text.
func appendStrong(dst []byte, text string) []byte {
	n := strings.Count(text, strongDelimiter)
	for i := 0; ; i++ {
		j := strings.Index(text, strongDelimiter)
		if j < 0 {
			return append(dst, text...)
		}
		dst = append(dst, text[:j]...)
		switch {
		case i == n-1 && n%2 == 1:
			dst = append(dst, strongDelimiter...)
		case i%2 == 0:
			dst = append(dst, strongOpen...)
		default:
			dst = append(dst, strongClose...)
		}
		text = text[j+len(strongDelimiter):]
	}
}

// appendMath replaces each $...$ span with \(...\).
// An opening '$' without a closing partner
// is kept along with the rest of the text.
func appendMath(dst []byte, text []byte) []byte {
	for {
		start := bytes.IndexByte(text, mathDelimiter)
		if start < 0 {
			return append(dst, text...)
		}
		dst = append(dst, text[:start]...)
		text = text[start+1:]
		end := bytes.IndexByte(text, mathDelimiter)
		if end < 0 {
			dst = append(dst, mathDelimiter)
			return append(dst, text...)
		}
		dst = append(dst, mathOpen...)
		dst = append(dst, text[:end]...)
		dst = append(dst, mathClose...)
		text = text[end+1:]
	}
}
