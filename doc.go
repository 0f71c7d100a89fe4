// Package budget provides the types and functions for a single-user,
// local-first income and expense ledger. It is designed to keep all data
// on the user's machine, in plain per-key JSON files that are easy to
// inspect, back up, and move between devices.
//
// The core functionalities include:
//   - Ledger Management: Recording income and expense records, each with a
//     date, a description, an integer KRW amount and optional notes, plus a
//     growing set of expense categories.
//   - Exchange Rate Cache: A KRW-per-USD rate fetched from a public
//     provider, cached with its fetch timestamp and refreshed only when
//     older than a fixed staleness window.
//   - Import/Export: A versioned JSON snapshot of the whole ledger plus the
//     current rate, with defensive per-field repair when reading documents
//     produced elsewhere.
//   - Summary: Pure read-side projections of the ledger: totals in both
//     currencies and a per-category breakdown.
//
// This package serves as the foundational logic for the `pbt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package budget
