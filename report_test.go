package binary32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		arg  float32
		want []string
	}{
		{
			"one",
			1.0,
			[]string{
				"1 is recalculated by its parts (sign, exponent, mantissa) -> 1",
				"field     | as bits   | as real number",
				"sign      | 0    | 1",
				"exponent  | 01111111    | 1",
				"mantissa  | 00000000000000000000000   | 1",
			},
		},
		{
			"negative two",
			-2.0,
			[]string{
				"-2 is recalculated by its parts (sign, exponent, mantissa) -> -2",
				"field     | as bits   | as real number",
				"sign      | 1    | -1",
				"exponent  | 10000000    | 2",
				"mantissa  | 00000000000000000000000   | 1",
			},
		},
		{
			"three halves",
			1.5,
			[]string{
				"1.5 is recalculated by its parts (sign, exponent, mantissa) -> 1.5",
				"field     | as bits   | as real number",
				"sign      | 0    | 1",
				"exponent  | 01111111    | 1",
				"mantissa  | 10000000000000000000000   | 1.5",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, Report(&sb, tt.arg))
			require.Equal(t, strings.Join(tt.want, "\n")+"\n", sb.String())
		})
	}
}
