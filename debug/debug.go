package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Flatten    bool
	Merge      bool
	Repetition bool
	Parse      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Flatten = boolEnv("PEGFOLD_DEBUG_FLATTEN")
	d.Merge = boolEnv("PEGFOLD_DEBUG_MERGE")
	d.Repetition = boolEnv("PEGFOLD_DEBUG_REPETITION")
	d.Parse = boolEnv("PEGFOLD_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Flatten() bool {
	return d.Flatten
}
func Merge() bool {
	return d.Merge
}
func Repetition() bool {
	return d.Repetition
}
func Parse() bool {
	return d.Parse
}
