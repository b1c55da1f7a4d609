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

import "golang.org/x/text/language"

// untitledTags and untitledNames are parallel.
// The first entry is the fallback.
var (
	untitledTags = []language.Tag{
		language.English,
		language.Italian,
		language.German,
		language.French,
		language.Spanish,
	}
	untitledNames = []string{
		untitledDocument,
		"Documento NeXt",
		"Unbenanntes Dokument",
		"Document sans titre",
		"Documento sin título",
	}
)

var untitledMatcher = language.NewMatcher(untitledTags)

// DefaultTitle returns the title of a document without a @title{...} directive
// in the language that best matches the given tag.
// Languages without a translation use English.
// The result is suitable for [Parser.DefaultTitle].
func DefaultTitle(tag language.Tag) string {
	_, i, conf := untitledMatcher.Match(tag)
	if conf == language.No {
		return untitledDocument
	}
	return untitledNames[i]
}
