// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// FindColors locates color literals in the stylesheet: hex values,
// rgb()/rgba() calls and named colors in declaration values.
func (e *Engine) FindColors(sheet *Stylesheet) []protocol.ColorInformation {
	colors := []protocol.ColorInformation{}
	root := sheet.Root()
	if root == nil {
		return colors
	}

	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		switch node.Type() {
		case cssNodeColorValue:
			if c, ok := parseHexColor(sheet.text(node)); ok {
				colors = append(colors, protocol.ColorInformation{
					Range: nodeRange(node),
					Color: c,
				})
			}

		case cssNodeCallExpression:
			if c, ok := parseColorCall(sheet, node); ok {
				colors = append(colors, protocol.ColorInformation{
					Range: nodeRange(node),
					Color: c,
				})
			}

		case cssNodePlainValue:
			if hex, ok := namedColors[sheet.text(node)]; ok && insideDeclarationValue(node) {
				if c, hexOK := parseHexColor(hex); hexOK {
					colors = append(colors, protocol.ColorInformation{
						Range: nodeRange(node),
						Color: c,
					})
				}
			}
		}

		for i := 0; i < int(node.NamedChildCount()); i++ {
			walk(node.NamedChild(i))
		}
	}
	walk(root)

	return colors
}

// ColorPresentations offers hex, rgb() and hsl() renderings of a color.
func (e *Engine) ColorPresentations(color protocol.Color, rng protocol.Range) []protocol.ColorPresentation {
	c := colorful.Color{R: float64(color.Red), G: float64(color.Green), B: float64(color.Blue)}.Clamped()
	r8 := int(c.R*255 + 0.5)
	g8 := int(c.G*255 + 0.5)
	b8 := int(c.B*255 + 0.5)
	h, s, l := c.Hsl()

	labels := []string{
		c.Hex(),
		fmt.Sprintf("rgb(%d, %d, %d)", r8, g8, b8),
		fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100),
	}
	if color.Alpha < 1 {
		labels = []string{
			fmt.Sprintf("rgba(%d, %d, %d, %.2g)", r8, g8, b8, color.Alpha),
			fmt.Sprintf("hsla(%.0f, %.0f%%, %.0f%%, %.2g)", h, s*100, l*100, color.Alpha),
		}
	}

	presentations := make([]protocol.ColorPresentation, 0, len(labels))
	for _, label := range labels {
		label := label
		presentations = append(presentations, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   rng,
				NewText: label,
			},
		})
	}
	return presentations
}

// parseHexColor parses #rgb, #rgba, #rrggbb and #rrggbbaa forms.
func parseHexColor(text string) (protocol.Color, bool) {
	if !strings.HasPrefix(text, "#") {
		return protocol.Color{}, false
	}
	hex := text[1:]

	expand := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	switch len(hex) {
	case 3, 4:
		hex = expand(hex)
	case 6, 8:
	default:
		return protocol.Color{}, false
	}

	channel := func(i int) (float64, bool) {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(v) / 255, true
	}

	r, okR := channel(0)
	g, okG := channel(2)
	b, okB := channel(4)
	if !okR || !okG || !okB {
		return protocol.Color{}, false
	}
	alpha := 1.0
	if len(hex) == 8 {
		a, okA := channel(6)
		if !okA {
			return protocol.Color{}, false
		}
		alpha = a
	}
	return protocol.Color{Red: float32(r), Green: float32(g), Blue: float32(b), Alpha: float32(alpha)}, true
}

// parseColorCall handles rgb(...) and rgba(...) calls with numeric
// arguments. Percentages and variables pass through unrecognized.
func parseColorCall(sheet *Stylesheet, call *sitter.Node) (protocol.Color, bool) {
	fn := childOfType(call, cssNodeFunctionName)
	if fn == nil {
		return protocol.Color{}, false
	}
	name := sheet.text(fn)
	if name != "rgb" && name != "rgba" {
		return protocol.Color{}, false
	}

	args := childOfType(call, cssNodeArguments)
	if args == nil {
		return protocol.Color{}, false
	}
	var values []float64
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() != cssNodeIntegerValue && child.Type() != cssNodeFloatValue {
			return protocol.Color{}, false
		}
		v, err := strconv.ParseFloat(sheet.text(child), 64)
		if err != nil {
			return protocol.Color{}, false
		}
		values = append(values, v)
	}
	if len(values) != 3 && len(values) != 4 {
		return protocol.Color{}, false
	}

	color := protocol.Color{
		Red:   float32(values[0] / 255),
		Green: float32(values[1] / 255),
		Blue:  float32(values[2] / 255),
		Alpha: 1,
	}
	if len(values) == 4 {
		color.Alpha = float32(values[3])
	}
	return color, true
}

// insideDeclarationValue reports whether node sits in the value part of a
// declaration, which keeps selector words like "red" in .red from being
// reported as colors.
func insideDeclarationValue(node *sitter.Node) bool {
	parent := node.Parent()
	return parent != nil && parent.Type() == cssNodeDeclaration
}
