// Package tracker provides the types and functions of a personal investment
// tracker. It is designed to be local-first: the whole history fits in a single
// CSV file that the user owns.
//
// The core functionalities include:
//   - Transactions: dated records of a contribution and the resulting account
//     balance, tagged with an account type.
//   - Metrics: a stateless engine that reduces a table of transactions into
//     total invested, current balance, earnings, months invested and average
//     monthly earnings.
//   - Sources: reading the table from a shared Google Sheet, with a local CSV
//     file as backup.
//   - Data Persistence: encoding and decoding the table to and from CSV, merging
//     imports and deleting rows.
//
// Insights, rendering and notifications are built on top of this package in
// their own packages. This package serves as the foundational logic for the
// `ptrack` command-line tool.
package tracker
