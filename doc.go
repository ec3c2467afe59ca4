// Package tracker implements a single-user personal finance ledger.
//
// It keeps five books of records: daily expenses, credit expenses, borrowed
// money, lent money, and bank loans. The whole store is persisted as a single
// JSON document, reloaded at startup (migrating legacy positional layouts on
// the fly), and flushed back after every mutation. Reporting is done through
// date-grouped timelines with per-day and grand totals.
package tracker
