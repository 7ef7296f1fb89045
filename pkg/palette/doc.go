// Package palette deterministically derives display colors from named
// hue-range recipes.
//
// # Palettes
//
// A [Palette] is a hue range (in degrees, possibly wrapping past 360) plus a
// base saturation and lightness. Ten palettes ship with the package; the set
// of [Name] values is the public contract, the concrete hues may be retuned
// between releases.
//
// # Generation
//
// [Generate] spreads count hues evenly across the palette's span and converts
// each HSL triple to a lowercase "#rrggbb" string:
//
//	colors := palette.Generate(palette.Ocean, 5, false)
//
// Dark mode raises lightness (and tames very saturated palettes) before the
// hues are distributed. The accessible palette skips interpolation and cycles
// twelve colorblind-distinguishable hues instead.
//
// Generation is a pure function of its inputs. Unknown names never fail: the
// generator logs a warning and falls back to [Default].
package palette
