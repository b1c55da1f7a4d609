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


package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/nxt"
	"zombiezen.com/go/nxt/internal/examples"
)

func FuzzFormat(f *testing.F) {
	suite, err := examples.Load()
	if err != nil {
		f.Fatal(err)
	}
	for _, ex := range suite {
		f.Add(ex.Source)
	}

	f.Fuzz(func(t *testing.T, source string) {
		doc := nxt.Parse([]byte(source))
		originalHTML, originalTitle := renderString(doc)

		got := new(bytes.Buffer)
		if err := Format(got, doc); err != nil {
			t.Fatal("Format #1:", err)
		}

		formattedDoc := nxt.Parse(got.Bytes())
		formattedHTML, formattedTitle := renderString(formattedDoc)
		if diff := cmp.Diff(originalHTML, formattedHTML); diff != "" {
			t.Errorf("Reformatting changed semantics. Original:\n%s\nReformatting:\n%s\nHTML diff (-want +got):\n%s", source, got, diff)
		}
		if originalTitle != formattedTitle {
			t.Errorf("Reformatting changed title from %q to %q", originalTitle, formattedTitle)
		}

		reformatted := new(bytes.Buffer)
		if err := Format(reformatted, formattedDoc); err != nil {
			t.Error("Format #2:", err)
		}
		if diff := cmp.Diff(got.String(), reformatted.String()); diff != "" {
			t.Errorf("Format not idempotent (-first +second):\n%s", diff)
		}
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "Empty",
			source: "",
			want:   "",
		},
		{
			name:   "Title",
			source: "  @title{Demo}  \n",
			want:   "@title{Demo}\n",
		},
		{
			name:   "TitleMovesToTop",
			source: "Hello\n@title{Demo}\n",
			want:   "@title{Demo}\n\nHello\n",
		},
		{
			name:   "Blocks",
			source: "# A\n## B\ntext\n@note{n}\n@code{c}\n@image{i.png}\n",
			want:   "# A\n\n## B\n\ntext\n\n@note{n}\n\n@code{c}\n\n@image{i.png}\n",
		},
		{
			name:   "UnterminatedDirective",
			source: "@note{oops\n",
			want:   "@note{}\n",
		},
		{
			name:   "AdjacentLists",
			source: "- a\n-   b\n\n- c\n",
			want:   "- a\n-   b\n\n- c\n",
		},
		{
			name:   "Table",
			source: "|a|| b |\n|\n",
			want:   "| a | b |\n|\n",
		},
		{
			name:   "InlineMarkupKept",
			source: "**bold** and $x$\n",
			want:   "**bold** and $x$\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := new(strings.Builder)
			if err := Format(got, nxt.Parse([]byte(test.source))); err != nil {
				t.Error("Format:", err)
			}
			if diff := cmp.Diff(test.want, got.String()); diff != "" {
				t.Errorf("Format(Parse(%q)) (-want +got):\n%s", test.source, diff)
			}
		})
	}
}

func TestFormatWriteError(t *testing.T) {
	wantErr := errors.New("bork")
	doc := nxt.Parse([]byte("# A\n- b\n| c |\n"))
	if err := Format(failWriter{wantErr}, doc); !errors.Is(err, wantErr) {
		t.Errorf("Format(failWriter, doc) = %v; want %v", err, wantErr)
	}
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func renderString(doc *nxt.Document) (html, title string) {
	return string(new(nxt.HTMLRenderer).AppendHTML(nil, doc)), doc.Title
}
