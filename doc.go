// Package bullion implements a manual paper-trading simulator for a two-asset
// portfolio (a gold and a silver instrument). It is designed to be local-first
// and auditable: every executed trade and every end-of-day valuation is
// appended to a durable, human-readable ledger.
//
// The core functionalities include:
//   - Portfolio Management: a single-owner holdings record (cash plus
//     fractional share balances) initialized from a cash amount and an
//     allocation split, and mutated in place by trade execution.
//   - Trade Execution: buy and sell operations with strict sufficiency
//     checks, at externally supplied daily prices and no transaction fees.
//   - Valuation: a pure mark-to-market engine computing per-asset values,
//     total value and profit-and-loss against the initial capital.
//   - Day Orchestration: a runner that applies an ordered batch of trade
//     requests and records exactly one NAV row per fully-succeeded day.
//   - Persistence: append-only CSV ledgers for trades and daily NAV, a
//     single overwritten JSON snapshot for session continuity, and a
//     dashboard-friendly daily export.
//
// This package serves as the foundational logic for the `bsim` command-line
// tool; all prices are supplied per call, never fetched.
package bullion
