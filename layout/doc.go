// Package layout reconstructs text from positioned glyphs.
//
// Two components cooperate to turn a bag of glyphs into text lines:
//
//   - [LineGrouper] clusters glyphs into visual lines by vertical position,
//     using a configurable tolerance to absorb baseline jitter.
//   - [Reconstructor] converts one line of ordered glyphs into a string,
//     inferring word boundaries from inter-glyph gaps and wrapping bold
//     runs in <bold>...</bold> markers.
//
// Both are stateless transformations over their inputs; nothing carries
// across lines or regions.
package layout
