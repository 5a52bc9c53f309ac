// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package styledjsx locates CSS embedded in styled-jsx template literals
// and produces a same-length, CSS-only view of the source document.
//
// # Pipeline
//
//	raw text ──► ScanCandidates (cheap regex pre-filter)
//	         ──► LocateTemplates (tree-sitter walk, exact ranges)
//	         ──► Mask (same-length masking)
//	         ──► SyntheticDocument (original URI+version, "css" language id)
//
// The masked text is byte-for-byte the same length as the original, so any
// offset or position computed against the synthetic document is valid
// against the source document with no coordinate translation.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use. Each call
// creates its own tree-sitter parser instance.
package styledjsx
