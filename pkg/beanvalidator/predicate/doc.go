// Package predicate holds the pure string classifiers behind every constraint
// kind: numeric strings, Japanese script subsets, telephone numbers, postal
// codes, date formats, charset names and boolean-like tokens.
//
// Predicates never see absent values; the evaluator skips nil and empty field
// values before calling them. Called directly they follow their rule literally,
// so for example NumberString("", 0, 5) is false while HalfNumber("") is true.
//
// Predicates that take a caller-supplied pattern return an error when the
// pattern itself is malformed. That error is a configuration bug, not a failed
// validation.
//
// All functions are safe for concurrent use.
package predicate
