// Package services implements the record keeper's operations on top of the
// repositories: login, client and project listing and registration, and the
// aggregate statistics with the report derived from them.
//
// Registration failures never panic. They are logged at error level and
// returned wrapped with one of the common write reasons, so callers can branch
// with errors.Is.
package services
