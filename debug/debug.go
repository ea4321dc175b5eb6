// Package debug holds environment-driven debug switches.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Load  bool
	Wire  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TABKV_DEBUG_PARSE")
	d.Load = boolEnv("TABKV_DEBUG_LOAD")
	d.Wire = boolEnv("TABKV_DEBUG_WIRE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Load() bool {
	return d.Load
}
func Wire() bool {
	return d.Wire
}
