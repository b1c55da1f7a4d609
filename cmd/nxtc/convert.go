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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"zombiezen.com/go/nxt"
)

// ReadError is returned when the input file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when the output file cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type converter struct {
	parser   *nxt.Parser
	renderer nxt.HTMLRenderer
	bodyOnly bool
}

// convert reads a NeXt document from inputPath and writes HTML to outputPath.
// The input is read completely before the output is created,
// so a failed read never leaves an output file behind.
func (c *converter) convert(inputPath, outputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return &ReadError{Path: inputPath, Err: err}
	}
	tracer().Debugf("read %d bytes from %s", len(source), inputPath)

	doc := c.parser.Parse(source)
	tracer().Debugf("parsed %d blocks, title %q", len(doc.Blocks), doc.Title)
	body := c.renderer.AppendHTML(nil, doc)

	err = writeFile(outputPath, func(w io.Writer) error {
		if c.bodyOnly {
			_, err := w.Write(body)
			return err
		}
		return nxt.RenderPage(w, doc.Title, body)
	})
	if err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}
	return nil
}

// writeFile creates the named file and calls write to fill it.
// If any step fails, the file is closed and removed.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
