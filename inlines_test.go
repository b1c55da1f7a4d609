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

import "testing"

func TestFormatInline(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"**bold**", "<strong>bold</strong>"},
		{"a **b** c **d** e", "a <strong>b</strong> c <strong>d</strong> e"},
		{"a **b** c **d", "a <strong>b</strong> c **d"},
		{"**", "**"},
		{"****", "<strong></strong>"},
		{"***", "***"},
		{"***x**", "<strong>*x</strong>"},
		{"** a ** b **", "<strong> a </strong> b **"},
		{"$x$", `\(x\)`},
		{"$a$ text $b$", `\(a\) text \(b\)`},
		{"$unclosed", "$unclosed"},
		{"$a$ and $b", `\(a\) and $b`},
		{"$$", `\(\)`},
		{"cost: 5$", "cost: 5$"},
		{"**$x$**", `<strong>\(x\)</strong>`},
		{"$**$**", `\(<strong>\)</strong>`},
		{"<em>raw</em> & co", "<em>raw</em> & co"},
	}
	for _, test := range tests {
		if got := FormatInline(test.text); got != test.want {
			t.Errorf("FormatInline(%q) = %q; want %q", test.text, got, test.want)
		}
	}
}

func TestAppendInline(t *testing.T) {
	dst := []byte("<p>")
	got := string(AppendInline(dst, "**a** $b$"))
	const want = `<p><strong>a</strong> \(b\)`
	if got != want {
		t.Errorf("AppendInline(%q, %q) = %q; want %q", "<p>", "**a** $b$", got, want)
	}
}

func FuzzFormatInline(f *testing.F) {
	f.Add("")
	f.Add("a **b** c **d")
	f.Add("$a$ text $b$")
	f.Add("***$x**$")

	f.Fuzz(func(t *testing.T, text string) {
		once := FormatInline(text)
		if twice := FormatInline(once); twice != once {
			t.Errorf("FormatInline(%q) = %q; FormatInline of that = %q", text, once, twice)
		}
	})
}
