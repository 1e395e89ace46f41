// Package quotes reads the raw option quote feed and repairs gaps in it.
//
// The feed is semicolon-delimited text with one header line. Numeric fields
// may use a comma decimal separator and may be empty or malformed; FillGaps
// repairs the four quote fields by nearest-neighbor or midpoint
// interpolation before the records reach the pricing stage.
package quotes
