// Copyright (C) 2025 the styled-jsx-ls authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cssls

// PropertyInfo describes a CSS property for completion, hover and
// validation.
type PropertyInfo struct {
	Name        string
	Description string
	Values      []string
}

// propertyTable is the built-in CSS property database. It is not a full
// copy of the CSS specifications; it covers the properties that show up
// in component styles in practice.
var propertyTable = []PropertyInfo{
	{"align-content", "Aligns a flex container's lines within the flex container when there is extra space in the cross-axis.", []string{"center", "flex-end", "flex-start", "space-around", "space-between", "stretch"}},
	{"align-items", "Aligns flex items along the cross axis of the current line of the flex container.", []string{"baseline", "center", "flex-end", "flex-start", "stretch"}},
	{"align-self", "Overrides the align-items value for a single flex item.", []string{"auto", "baseline", "center", "flex-end", "flex-start", "stretch"}},
	{"animation", "Shorthand for the animation-* properties.", []string{"none", "infinite", "alternate", "forwards", "backwards", "both", "paused", "running"}},
	{"animation-delay", "Defines when the animation will start.", nil},
	{"animation-direction", "Defines whether the animation should play in reverse on alternate cycles.", []string{"normal", "reverse", "alternate", "alternate-reverse"}},
	{"animation-duration", "Defines the length of time an animation takes to complete one cycle.", nil},
	{"animation-fill-mode", "Defines what values are applied before and after the animation executes.", []string{"none", "forwards", "backwards", "both"}},
	{"animation-iteration-count", "Defines the number of times an animation cycle is played.", []string{"infinite"}},
	{"animation-name", "Defines the list of animations that apply.", []string{"none"}},
	{"animation-timing-function", "Describes how the animation progresses over one cycle.", []string{"ease", "ease-in", "ease-in-out", "ease-out", "linear", "step-end", "step-start"}},
	{"appearance", "Controls platform-native styling of UI widgets.", []string{"auto", "none"}},
	{"backdrop-filter", "Applies graphical effects to the area behind an element.", []string{"none"}},
	{"background", "Shorthand for the background-* properties.", []string{"none", "fixed", "local", "scroll", "repeat", "no-repeat", "transparent"}},
	{"background-attachment", "Determines whether the background scrolls with the document.", []string{"fixed", "local", "scroll"}},
	{"background-clip", "Determines the background painting area.", []string{"border-box", "content-box", "padding-box", "text"}},
	{"background-color", "Sets the background color of an element.", []string{"currentColor", "transparent"}},
	{"background-image", "Sets one or more background images for an element.", []string{"none"}},
	{"background-position", "Sets the initial position of a background image.", []string{"bottom", "center", "left", "right", "top"}},
	{"background-repeat", "Determines how a background image is repeated.", []string{"no-repeat", "repeat", "repeat-x", "repeat-y", "round", "space"}},
	{"background-size", "Determines the size of a background image.", []string{"auto", "contain", "cover"}},
	{"border", "Shorthand for border-width, border-style and border-color.", []string{"none", "solid", "dashed", "dotted", "double"}},
	{"border-bottom", "Shorthand for the bottom border's width, style and color.", []string{"none", "solid", "dashed"}},
	{"border-collapse", "Determines whether table cell borders are collapsed.", []string{"collapse", "separate"}},
	{"border-color", "Sets the color of the four borders.", []string{"currentColor", "transparent"}},
	{"border-left", "Shorthand for the left border's width, style and color.", []string{"none", "solid", "dashed"}},
	{"border-radius", "Rounds the corners of an element's border box.", nil},
	{"border-right", "Shorthand for the right border's width, style and color.", []string{"none", "solid", "dashed"}},
	{"border-style", "Sets the line style of the four borders.", []string{"dashed", "dotted", "double", "groove", "hidden", "inset", "none", "outset", "ridge", "solid"}},
	{"border-top", "Shorthand for the top border's width, style and color.", []string{"none", "solid", "dashed"}},
	{"border-width", "Sets the width of the four borders.", []string{"medium", "thick", "thin"}},
	{"bottom", "Sets the distance between the element's bottom edge and its containing block.", []string{"auto"}},
	{"box-shadow", "Attaches one or more drop shadows to the box.", []string{"inset", "none"}},
	{"box-sizing", "Determines how width and height are computed.", []string{"border-box", "content-box"}},
	{"color", "Sets the foreground color of an element's text content.", []string{"currentColor", "transparent"}},
	{"content", "Generates content in ::before and ::after pseudo-elements.", []string{"none", "normal", "open-quote", "close-quote"}},
	{"cursor", "Sets the cursor shown over the element.", []string{"auto", "default", "grab", "help", "move", "none", "not-allowed", "pointer", "progress", "text", "wait", "zoom-in", "zoom-out"}},
	{"display", "Determines the element's inner and outer display types.", []string{"block", "contents", "flex", "grid", "inline", "inline-block", "inline-flex", "inline-grid", "none", "table"}},
	{"filter", "Applies graphical effects like blur or color shift to an element.", []string{"none"}},
	{"flex", "Shorthand for flex-grow, flex-shrink and flex-basis.", []string{"auto", "initial", "none"}},
	{"flex-basis", "Sets the initial main size of a flex item.", []string{"auto", "content"}},
	{"flex-direction", "Defines the direction of the flex container's main axis.", []string{"column", "column-reverse", "row", "row-reverse"}},
	{"flex-grow", "Sets the flex grow factor of a flex item.", nil},
	{"flex-shrink", "Sets the flex shrink factor of a flex item.", nil},
	{"flex-wrap", "Controls whether flex items wrap onto multiple lines.", []string{"nowrap", "wrap", "wrap-reverse"}},
	{"float", "Places the element to the left or right of its line box.", []string{"left", "none", "right"}},
	{"font", "Shorthand for the font-* properties.", []string{"caption", "icon", "menu", "message-box", "small-caption", "status-bar"}},
	{"font-family", "Specifies a prioritized list of font family names.", []string{"cursive", "fantasy", "monospace", "sans-serif", "serif", "system-ui"}},
	{"font-size", "Sets the size of the font.", []string{"large", "larger", "medium", "small", "smaller", "x-large", "x-small", "xx-large", "xx-small"}},
	{"font-style", "Selects between normal, italic and oblique faces.", []string{"italic", "normal", "oblique"}},
	{"font-weight", "Sets the weight of the font.", []string{"100", "200", "300", "400", "500", "600", "700", "800", "900", "bold", "bolder", "lighter", "normal"}},
	{"gap", "Sets the gaps between rows and columns in grid and flex layouts.", []string{"normal"}},
	{"grid", "Shorthand for the explicit and implicit grid properties.", []string{"none"}},
	{"grid-area", "Shorthand that places a grid item by name or line numbers.", []string{"auto"}},
	{"grid-column", "Shorthand for grid-column-start and grid-column-end.", []string{"auto"}},
	{"grid-row", "Shorthand for grid-row-start and grid-row-end.", []string{"auto"}},
	{"grid-template-columns", "Defines the track sizes of the grid columns.", []string{"auto", "none"}},
	{"grid-template-rows", "Defines the track sizes of the grid rows.", []string{"auto", "none"}},
	{"height", "Sets the height of the element's content box.", []string{"auto", "fit-content", "max-content", "min-content"}},
	{"justify-content", "Aligns flex items along the main axis of the current line.", []string{"center", "flex-end", "flex-start", "space-around", "space-between", "space-evenly"}},
	{"left", "Sets the distance between the element's left edge and its containing block.", []string{"auto"}},
	{"letter-spacing", "Sets additional spacing between text characters.", []string{"normal"}},
	{"line-height", "Sets the height of line boxes.", []string{"normal"}},
	{"list-style", "Shorthand for the list-style-* properties.", []string{"circle", "decimal", "disc", "none", "square"}},
	{"margin", "Shorthand that sets all four margins.", []string{"auto"}},
	{"margin-bottom", "Sets the bottom margin.", []string{"auto"}},
	{"margin-left", "Sets the left margin.", []string{"auto"}},
	{"margin-right", "Sets the right margin.", []string{"auto"}},
	{"margin-top", "Sets the top margin.", []string{"auto"}},
	{"max-height", "Sets the maximum height of the element.", []string{"none", "fit-content", "max-content", "min-content"}},
	{"max-width", "Sets the maximum width of the element.", []string{"none", "fit-content", "max-content", "min-content"}},
	{"min-height", "Sets the minimum height of the element.", []string{"auto", "fit-content", "max-content", "min-content"}},
	{"min-width", "Sets the minimum width of the element.", []string{"auto", "fit-content", "max-content", "min-content"}},
	{"object-fit", "Determines how replaced content fits its box.", []string{"contain", "cover", "fill", "none", "scale-down"}},
	{"opacity", "Sets the opacity of the element.", nil},
	{"outline", "Shorthand for outline-width, outline-style and outline-color.", []string{"none", "solid", "dashed"}},
	{"overflow", "Determines what happens to content that overflows the box.", []string{"auto", "clip", "hidden", "scroll", "visible"}},
	{"overflow-x", "Determines horizontal overflow behavior.", []string{"auto", "clip", "hidden", "scroll", "visible"}},
	{"overflow-y", "Determines vertical overflow behavior.", []string{"auto", "clip", "hidden", "scroll", "visible"}},
	{"padding", "Shorthand that sets all four paddings.", nil},
	{"padding-bottom", "Sets the bottom padding.", nil},
	{"padding-left", "Sets the left padding.", nil},
	{"padding-right", "Sets the right padding.", nil},
	{"padding-top", "Sets the top padding.", nil},
	{"pointer-events", "Determines under which circumstances the element can be the target of pointer events.", []string{"auto", "none"}},
	{"position", "Determines the positioning scheme of the element.", []string{"absolute", "fixed", "relative", "static", "sticky"}},
	{"right", "Sets the distance between the element's right edge and its containing block.", []string{"auto"}},
	{"text-align", "Sets the horizontal alignment of inline content.", []string{"center", "end", "justify", "left", "right", "start"}},
	{"text-decoration", "Shorthand for the text-decoration-* properties.", []string{"line-through", "none", "overline", "underline"}},
	{"text-overflow", "Determines how overflowed inline content is signaled.", []string{"clip", "ellipsis"}},
	{"text-transform", "Controls capitalization of text.", []string{"capitalize", "lowercase", "none", "uppercase"}},
	{"top", "Sets the distance between the element's top edge and its containing block.", []string{"auto"}},
	{"transform", "Applies a 2D or 3D transformation to the element.", []string{"none"}},
	{"transition", "Shorthand for the transition-* properties.", []string{"all", "none", "ease", "ease-in", "ease-in-out", "ease-out", "linear"}},
	{"vertical-align", "Sets the vertical alignment of an inline or table-cell box.", []string{"baseline", "bottom", "middle", "sub", "super", "text-bottom", "text-top", "top"}},
	{"visibility", "Determines whether the element is rendered.", []string{"collapse", "hidden", "visible"}},
	{"white-space", "Determines how whitespace inside the element is handled.", []string{"normal", "nowrap", "pre", "pre-line", "pre-wrap"}},
	{"width", "Sets the width of the element's content box.", []string{"auto", "fit-content", "max-content", "min-content"}},
	{"will-change", "Hints which properties are expected to change.", []string{"auto", "contents", "scroll-position"}},
	{"word-break", "Determines line break opportunities within words.", []string{"break-all", "keep-all", "normal"}},
	{"z-index", "Sets the stack level of a positioned element.", []string{"auto"}},
}

// AtRuleInfo describes a CSS at-rule for completion.
type AtRuleInfo struct {
	Name        string
	Description string
}

var atRuleTable = []AtRuleInfo{
	{"@charset", "Defines the character set used by the style sheet."},
	{"@font-face", "Describes a downloadable font resource."},
	{"@import", "Imports another style sheet."},
	{"@keyframes", "Defines the intermediate steps of an animation sequence."},
	{"@media", "Applies rules conditionally based on media queries."},
	{"@supports", "Applies rules conditionally based on feature support."},
}

// namedColors maps CSS named colors to their hex values. Extended colors
// are included alongside the basic set because component styles use both.
var namedColors = map[string]string{
	"aliceblue":      "#f0f8ff",
	"aqua":           "#00ffff",
	"beige":          "#f5f5dc",
	"black":          "#000000",
	"blue":           "#0000ff",
	"brown":          "#a52a2a",
	"coral":          "#ff7f50",
	"crimson":        "#dc143c",
	"cyan":           "#00ffff",
	"darkblue":       "#00008b",
	"darkgray":       "#a9a9a9",
	"darkgreen":      "#006400",
	"darkred":        "#8b0000",
	"dimgray":        "#696969",
	"fuchsia":        "#ff00ff",
	"gainsboro":      "#dcdcdc",
	"gold":           "#ffd700",
	"gray":           "#808080",
	"green":          "#008000",
	"grey":           "#808080",
	"hotpink":        "#ff69b4",
	"indigo":         "#4b0082",
	"ivory":          "#fffff0",
	"khaki":          "#f0e68c",
	"lavender":       "#e6e6fa",
	"lightblue":      "#add8e6",
	"lightgray":      "#d3d3d3",
	"lightgreen":     "#90ee90",
	"lime":           "#00ff00",
	"magenta":        "#ff00ff",
	"maroon":         "#800000",
	"navy":           "#000080",
	"olive":          "#808000",
	"orange":         "#ffa500",
	"orchid":         "#da70d6",
	"pink":           "#ffc0cb",
	"plum":           "#dda0dd",
	"purple":         "#800080",
	"rebeccapurple":  "#663399",
	"red":            "#ff0000",
	"salmon":         "#fa8072",
	"silver":         "#c0c0c0",
	"skyblue":        "#87ceeb",
	"slategray":      "#708090",
	"snow":           "#fffafa",
	"steelblue":      "#4682b4",
	"tan":            "#d2b48c",
	"teal":           "#008080",
	"tomato":         "#ff6347",
	"turquoise":      "#40e0d0",
	"violet":         "#ee82ee",
	"wheat":          "#f5deb3",
	"white":          "#ffffff",
	"whitesmoke":     "#f5f5f5",
	"yellow":         "#ffff00",
	"yellowgreen":    "#9acd32",
}

// propertyIndex maps property names to their table entry for O(1) lookup.
var propertyIndex = func() map[string]*PropertyInfo {
	idx := make(map[string]*PropertyInfo, len(propertyTable))
	for i := range propertyTable {
		idx[propertyTable[i].Name] = &propertyTable[i]
	}
	return idx
}()

// LookupProperty returns the property entry for name, nil if unknown.
// Vendor-prefixed and custom properties are never in the table.
func LookupProperty(name string) *PropertyInfo {
	return propertyIndex[name]
}

// isKnownProperty reports whether a property name should pass the
// unknown-property lint. Custom properties and vendor prefixes are
// always accepted.
func isKnownProperty(name string) bool {
	if len(name) >= 2 && name[0] == '-' {
		return true
	}
	return propertyIndex[name] != nil
}
