// Package flatten reduces the tagged trees produced by a PEG evaluator to
// the results users expect from a parse.
//
// A tree is built from three combinators:
//
//	ir.Sequence(children...)    // a >> b >> c
//	ir.Optional(children...)    // a.maybe
//	ir.Repetition(children...)  // a.repeat
//
// Flatten reduces it bottom up. Sequences fold their children pairwise with
// a merge policy: text concatenates, named results merge into one mapping,
// a name matched twice becomes a list under that name, and incidental text
// next to named results is dropped. Repetitions keep only their named
// results when there are any, flatten nested lists by one level, and
// otherwise concatenate their text.
//
//	res, err := flatten.Flatten(ir.Sequence(
//	    ir.Single("a", ir.FromString("1")),
//	    ir.FromString(","),
//	    ir.Single("a", ir.FromString("2")),
//	), false)
//	// res is {a: ["1", "2"]}
//
// Merges the policy cannot resolve fail with an error wrapping ErrMerge;
// the grammar then needs more names. Errors wrapping ErrInternal mean the
// tree itself violates the input contract.
package flatten
