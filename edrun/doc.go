// Package edrun supervises the external exact-diagonalization binary.
//
// 🚀 One run:
//
//	unique run directory → write INPUT → exec <install>/main INPUT →
//	capture stdout/stderr → ed.out / ed.err → Result
//
// Run directories live under <base>/mcpruns/<12 hex chars> so concurrent
// runs never collide; an explicit directory name is honored (under the
// install dir) but must not already exist. Timeouts kill the process and
// surface as ErrTimeout; a nonzero exit is a Result, not an error.
//
// ✨ Registry:
//
//	Every run can be recorded in a small SQLite registry (Store) so the
//	HTTP surface can list past runs with their status and exit codes.
//
// ⚙️ Usage:
//
//	res, err := edrun.Run(ctx, installDir, inputText,
//		edrun.WithTimeout(2*time.Minute))
package edrun
