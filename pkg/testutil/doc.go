// Package testutil provides helpers shared by the streamprinter tests.
//
// Key components:
//   - CreateFile / CreateDir: filesystem fixtures under t.TempDir()
//   - IsolateEnv: points the XDG directories at a temporary tree and clears
//     STREAMPRINTER_* variables, so user configuration never leaks into a test
//   - NewRenderer: a lipgloss renderer with a fixed color profile, for
//     deterministic escape sequences
package testutil
