package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pegfold/ir"
)

// Output is where Logf writes.
var Output io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = x.String()
		case []*ir.Node:
			args[i] = ir.FromSlice(x).String()
		default:
		}
	}
	fmt.Fprintf(Output, msg, args...)
}
