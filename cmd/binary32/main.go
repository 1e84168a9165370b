// Command binary32 decomposes a single precision floating-point number
// into its sign, exponent and mantissa fields and prints each field as
// bits and as its real-number contribution, together with the value
// recomposed from the parts.
//
// Usage:
//
//	binary32 3.14
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/sdifrance/binary32"
)

func main() {
	flag.Parse()
	if err := run(context.Background()); err != nil {
		glog.Exitf("got fatal error: %v", err)
	}
}

func run(_ context.Context) error {
	n, err := parseArg(flag.Args())
	if err != nil {
		return err
	}
	glog.Infof("parsed %v (bit pattern %#08x)", n, binary32.Extract(n).Bits())
	return binary32.Report(os.Stdout, n)
}

// parseArg reads the single positional argument as a float32. Both
// failure cases are fatal to the caller: nothing is printed on a
// missing or unparseable argument.
func parseArg(args []string) (float32, error) {
	if len(args) < 1 {
		return 0, errors.New("please provide a floating-point number as an argument, e.g. 3.14")
	}
	f, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid floating-point number %q", args[0])
	}
	return float32(f), nil
}
