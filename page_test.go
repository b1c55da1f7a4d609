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
	"errors"
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := RenderPage(buf, "Demo & Co", []byte("<p>\\(x\\)</p>")); err != nil {
		t.Fatal("RenderPage:", err)
	}
	got := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<meta charset="utf-8">`,
		"<title>Demo & Co</title>",
		"katex@" + KaTeXVersion + "/dist/katex.min.css",
		"katex@" + KaTeXVersion + "/dist/contrib/auto-render.min.js",
		"renderMathInElement(document.body)",
		".nxt-table",
		"<body>\n    <p>\\(x\\)</p>\n</body>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderPage(...) does not contain %q. Output:\n%s", want, got)
		}
	}
}

func TestRenderPageError(t *testing.T) {
	wantErr := errors.New("bork")
	if err := RenderPage(errorWriter{wantErr}, "x", nil); !errors.Is(err, wantErr) {
		t.Errorf("RenderPage(errorWriter, ...) = %v; want %v", err, wantErr)
	}
}

func TestCompile(t *testing.T) {
	got := string(Compile([]byte("# Hi\n")))
	if !strings.Contains(got, "<title>Untitled Document</title>") {
		t.Errorf("Compile output missing default title:\n%s", got)
	}
	if !strings.Contains(got, "<h1>Hi</h1>") {
		t.Errorf("Compile output missing body:\n%s", got)
	}
}
