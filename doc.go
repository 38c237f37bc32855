// Package belanja provides the types and operations for managing a
// personal shopping list. It is designed to be local-first: all data
// lives in a key-value store on the user's machine and never leaves it.
//
// The core functionalities include:
//   - Item Management: Recording purchase line items (name, quantity,
//     unit, unit price, purchase date) in an ordered, append/delete-only
//     collection with exact, precomputed line totals.
//   - Profile Management: A small display identity (name, job title,
//     institution, ID number, address, optional photo) used to
//     personalize the list header and exported reports.
//   - Preferences: The display language, the dark/light theme and the
//     session currency, with documented load-at-startup and
//     save-on-change rules.
//   - Formatting: Locale-correct currency and date rendering for the two
//     supported locales (id-ID and en-US).
//   - Data Persistence: Encoding and decoding the collection to and from
//     a human-readable JSONL value stored under a single key.
//
// This package serves as the foundational logic for the `blj`
// command-line tool; it carries no presentation concern itself.
package belanja
