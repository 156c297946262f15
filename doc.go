// Package schemadrift infers the structural schema of tabular data files,
// persists schemas as portable JSON snapshots, diffs two snapshots to
// report drift, and validates individual records against a snapshot.
//
// The package provides:
//
//   - Schema inference over CSV/TSV, spreadsheet, and JSON sources with
//     deterministic first-N row sampling (Infer)
//   - A snapshot store with atomic writes (Save/Load)
//   - Field-by-field schema comparison (Compare)
//   - Per-record validation with accumulated violations (Validate)
//
// Design policy:
//   - Keep only public APIs in the root package; ingestion drivers live
//     under source/ and the CLI under cmd/schemadrift.
//   - Every operation takes its configuration explicitly (Options); there
//     is no ambient process-wide state.
//   - All failures carry a stable code from the errors subpackage; the
//     core never panics across its API boundary.
package schemadrift
