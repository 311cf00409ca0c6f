// Package folioview is the client layer for a personal wealth-tracker
// backend. It fetches assets, accounts, portfolios, transactions and
// dashboard statistics over the backend's REST API and normalizes the wire
// format (snake_case keys, lowercase enum tags, string-encoded decimals)
// into display-ready view models.
//
// The core functionalities include:
//   - Wire Mapping: total, explicit enum tag tables in both directions and
//     per-entity mapping from wire records to view models and back to
//     request payloads.
//   - Aggregation: small display-only derivations the backend does not
//     provide pre-computed, such as allocation shares and implied absolute
//     deltas for percentage-only metrics.
//   - Fallback Data: a built-in sample dataset substituted on any read
//     failure, so browsing works with no backend running.
//
// This package serves as the foundational logic for the `fov` command-line
// tool, which renders each view as a markdown report in the terminal.
package folioview
