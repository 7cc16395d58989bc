// Package debug provides env-gated debug logging for the module.
// Set JOT_DEBUG_INFER, JOT_DEBUG_DECODE or JOT_DEBUG_EVAL to a truthy
// value to enable the corresponding trace output on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Infer  bool
	Decode bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Infer = boolEnv("JOT_DEBUG_INFER")
	d.Decode = boolEnv("JOT_DEBUG_DECODE")
	d.Eval = boolEnv("JOT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Infer() bool {
	return d.Infer
}
func Decode() bool {
	return d.Decode
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
