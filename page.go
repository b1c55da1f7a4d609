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
	"fmt"
	"io"
	"text/template"
)

// KaTeXVersion is the version of KaTeX that rendered pages load.
const KaTeXVersion = "0.16.9"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@{{.KaTeX}}/dist/katex.min.css">
    <script defer src="https://cdn.jsdelivr.net/npm/katex@{{.KaTeX}}/dist/katex.min.js"></script>
    <script defer src="https://cdn.jsdelivr.net/npm/katex@{{.KaTeX}}/dist/contrib/auto-render.min.js" onload="renderMathInElement(document.body);"></script>
    <style>
        body { font-family: 'Segoe UI', sans-serif; max-width: 210mm; margin: 40px auto; padding: 40px; line-height: 1.6; color: #333; }
        h1 { border-bottom: 2px solid #000; padding-bottom: 10px; }
        h2 { color: #444; margin-top: 30px; }
        .note { background: #e0f2fe; padding: 15px; border-left: 5px solid #0284c7; margin: 20px 0; border-radius: 4px; }
        pre { background: #1e293b; color: #fff; padding: 15px; border-radius: 5px; overflow-x: auto; }
        code { font-family: 'Consolas', monospace; }
        li { margin-bottom: 5px; }
        .nxt-image { max-width: 100%; height: auto; border-radius: 8px; box-shadow: 0 4px 8px rgba(0,0,0,0.1); display: block; margin: 20px auto; }
        .nxt-table { width: 100%; border-collapse: collapse; margin: 20px 0; font-size: 0.95em; }
        .nxt-table td { border: 1px solid #ddd; padding: 12px; }
        .nxt-table tr:nth-child(even) { background-color: #f9f9f9; }
        .nxt-table tr:first-child { background-color: #1e293b; color: white; font-weight: bold; }
        @media print { body { margin: 0; max-width: 100%; } }
    </style>
</head>
<body>
    {{.Body}}
</body>
</html>
`))

// RenderPage writes a complete HTML document with the given title and body
// to w. The page loads KaTeX to render math spans in the body.
// Neither the title nor the body are escaped.
func RenderPage(w io.Writer, title string, body []byte) error {
	err := pageTemplate.Execute(w, struct {
		Title string
		Body  string
		KaTeX string
	}{
		Title: title,
		Body:  string(body),
		KaTeX: KaTeXVersion,
	})
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Compile converts NeXt source into a complete HTML document
// using the default options for [Parser] and [HTMLRenderer].
func Compile(source []byte) []byte {
	body, title := Convert(source)
	buf := new(bytes.Buffer)
	if err := RenderPage(buf, title, body); err != nil {
		// Writing in-memory shouldn't fail.
		panic(err)
	}
	return buf.Bytes()
}
