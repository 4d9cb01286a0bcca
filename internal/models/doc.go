// Package models defines the records kept by the system (users, clients and
// projects), the closed sets of roles and project statuses, and the aggregate
// figures shown on the dashboard and reports screens.
package models
