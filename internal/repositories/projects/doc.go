// Package projects persists contracted jobs and answers the aggregate
// queries behind the dashboard and reports.
//
// Listing joins each project to its client with a LEFT JOIN, so projects
// whose client reference is NULL or points nowhere are still returned, with a
// nil client name. Rows are ordered alphabetically by the status text (ties by
// id), which is not a lifecycle order.
package projects
