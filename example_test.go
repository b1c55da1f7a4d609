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


package nxt_test

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"zombiezen.com/go/nxt"
)

func Example() {
	// Convert NeXt to an HTML body and a title.
	body, title := nxt.Convert([]byte("@title{Greeting}\nHello, **World**!\n"))
	fmt.Println(title)
	fmt.Println(string(body))
	// Output:
	// Greeting
	// <p>Hello, <strong>World</strong>!</p>
}

func ExampleParser() {
	parser := &nxt.Parser{
		DefaultTitle: nxt.DefaultTitle(language.German),
	}
	doc := parser.Parse([]byte("- Euler: $e^{i\\pi} + 1 = 0$\n"))
	fmt.Println(doc.Title)

	// Render blocks as HTML.
	renderer := &nxt.HTMLRenderer{}
	renderer.Render(os.Stdout, doc)
	fmt.Println()
	// Output:
	// Unbenanntes Dokument
	// <ul><li>Euler: \(e^{i\pi} + 1 = 0\)</li></ul>
}

func ExampleFormatInline() {
	fmt.Println(nxt.FormatInline("**bold** and $x^2$ but **not"))
	// Output:
	// <strong>bold</strong> and \(x^2\) but **not
}

func ExampleWalk() {
	doc := nxt.Parse([]byte("# Title\n| a | b |\n| c |\n"))
	nxt.Walk(doc, &nxt.WalkOptions{
		Pre: func(c *nxt.Cursor) bool {
			if c.Block().Kind() == nxt.TableCellKind {
				fmt.Printf("line %d: %s\n", c.Block().StartLine(), c.Block().Text())
			}
			return true
		},
	})
	// Output:
	// line 2: a
	// line 2: b
	// line 3: c
}
