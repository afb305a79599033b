// Package ee implements an arbitrary-precision expression evaluator: a
// tokenizer, a shunting-yard parser, and a postfix evaluator.
//
// Expressions mix arbitrary-precision Integer and Real arithmetic,
// Boolean logic, one- and two-argument math functions, and variable
// assignment. "x = 2 + 3 * 4" tokenizes, parses to postfix, and
// evaluates to the Variable x, whose slot now holds Integer(14) for later
// expressions tokenized by the same Tokenizer.
//
// A Tokenizer owns the variable dictionary for everything it tokenizes;
// reuse one Tokenizer across calls to Tokenize so that assignments made
// in one expression are visible to the next.
package ee
