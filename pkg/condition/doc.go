// Package condition implements the predicate language of icon rules.
//
// A Condition combines name aspects (prefix, exact name, suffix, optional
// suffix, "no dot"), a parent folder check, a full-path regular
// expression and three modifiers: a facet precondition, a project root
// restriction and an external enabler. Evaluate applies them in a fixed
// order against the lower-cased parts of a path:
//
//  1. a disabled condition never matches
//  2. the project root restriction
//  3. the enabler (a terminal enabler decides on its own)
//  4. the facet precondition
//  5. the parent check (on its own, a parent match is a match)
//  6. the regular expression (a full match is a match)
//  7. exact name, then prefix, then suffix
//
// Regular expressions use .NET/Java syntax through regexp2 and must match
// the whole lower-cased path. Compiled patterns, and compile failures,
// are cached per expression and shared by every condition.
//
// Conditions are written in settings files and icon packs as a Spec,
// where each name list implies its matching mode:
//
//	[[rules.conditions]]
//	exact = ["package"]
//	suffix = [".json"]
//	parents = ["config"]
package condition
