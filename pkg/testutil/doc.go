// Package testutil provides helpers shared by the iconrules tests.
//
// Key components:
//   - NewMemFS: in-memory filesystem preloaded with files
//   - Project: a configurable project context for conditions and dispatch
//   - MockEnabler: testify mock of enablers.Enabler
//   - FileRule, FolderRule: compact rule builders
//
// Usage guidelines:
//   - prefer NewMemFS over the real filesystem; only config and watch
//     tests touch disk, through t.TempDir
//   - define test data inline
package testutil
