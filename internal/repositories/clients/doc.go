// Package clients persists the business's customers.
//
// Clients are created at seed time and through the registration screen and
// are never updated or deleted. Listing is ordered by name using SQLite's
// default BINARY collation, so accented and lower-case names sort after the
// plain upper-case ones.
package clients
