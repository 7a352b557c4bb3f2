// Package paths provides centralized path handling for iconrules.
// It resolves the XDG locations of the IDE-level settings and normalises
// lookup paths into the lower-cased, slash-separated form the matching
// engine compares against.
package paths
