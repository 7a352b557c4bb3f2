// Package dispatch resolves the icon of a path.
//
// An Engine holds the published rule sets, one per kind, and answers
// ResolveIcon by walking the set in order: the first rule whose
// conditions hold wins. Alternates sit right after their origin and share
// its conditions, so once a group has failed the remaining members of the
// group are skipped without evaluation. Stats counts evaluations done and
// saved this way.
//
// Publish swaps in new rule sets atomically; lookups in flight keep the
// snapshot they started with. ResolveIcon never fails: malformed rules and
// misbehaving enablers are logged and count as non-matching.
package dispatch
