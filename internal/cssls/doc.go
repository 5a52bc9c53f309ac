// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package cssls is the CSS language capability consumed by the feature
// dispatchers: parse a stylesheet, then answer diagnostics, completion,
// hover, symbols, navigation, color and rename queries against it.
//
// The engine operates on synthetic CSS documents whose non-CSS bytes are
// blanked, so every range it reports is valid in the original source
// document's coordinate space. It is built on tree-sitter's CSS grammar
// and never consults any state beyond the text and tree it is handed.
//
// Positions use byte columns. Offsets are byte offsets.
package cssls
