package binary32

import (
	"fmt"
	"io"
	"strconv"
)

// Report runs the full extract/decode/recompose pipeline on n and
// writes a comparison table to w: the original and recomposed values,
// then one row per field with its raw bits (fixed width 1/8/23) and
// its decoded real number.
func Report(w io.Writer, n float32) error {
	fields := Extract(n)
	decoded := fields.Decode()

	_, err := fmt.Fprintf(w,
		"%s is recalculated by its parts (sign, exponent, mantissa) -> %s\n"+
			"field     | as bits   | as real number\n"+
			"sign      | %01b    | %s\n"+
			"exponent  | %08b    | %s\n"+
			"mantissa  | %023b   | %s\n",
		formatFloat(n), formatFloat(decoded.Recompose()),
		fields.Sign, formatFloat(decoded.Sign),
		fields.Exponent, formatFloat(decoded.Exponent),
		fields.Mantissa, formatFloat(decoded.Mantissa))
	return err
}

// formatFloat renders a float32 in its shortest exact decimal form.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
