// Package pdx parses the brace-delimited key/value script format used by
// Paradox strategy-game data and save files into an owned in-memory tree.
//
// # Overview
//
// A script file is a sequence of `key = value` statements. Values are
// literals (strings, integers, dates, fixed-point decimals) or braced
// constructs, which may be either a nested block of statements or a flat
// list of values:
//
//	color = { 128 64 0 }
//	822.2.2 = {
//	    birth = yes
//	    health = 5.500
//	}
//
// Both constructs share the same opening delimiter; the parser resolves
// the ambiguity with at most two tokens of lookahead (see Parser).
//
// # Data model
//
// The tree is built from Object, a tagged union over string, integer,
// date, decimal, block, and list variants. Ownership is strictly
// hierarchical: a Block or List owns its elements outright, the Parser
// owns the root Block and the string pool backing every string in the
// tree, and nothing is shared or cyclic. The typed As* accessors are
// unchecked; guard them with the matching Is* predicate.
//
// # Error model
//
// Failures come in two classes. Structural errors (malformed grammar,
// unrecognized tokens, unrepresentable date fields) are fatal: the parse
// aborts with a *ParseError and no partial tree. Value-level problems
// (decimal integral overflow, fractional truncation) are common in large
// hand-edited data sets and must not abort a multi-thousand-statement
// parse; they are appended to an ErrorQueue and the parse continues.
//
// # Usage
//
//	queue := &pdx.ErrorQueue{}
//	p, err := pdx.ParseFile("common/traits/00_traits.txt",
//	    pdx.WithErrorQueue(queue))
//	if err != nil {
//	    return err
//	}
//	for _, s := range p.Root().Statements() {
//	    if s.KeyEq("ambitious") && s.Value().IsBlock() {
//	        // ...
//	    }
//	}
//
// A Parser is single-use and not safe for concurrent use; parses with
// separate Parser, pool, and queue instances are fully independent.
package pdx
