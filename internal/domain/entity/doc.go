// Package entity holds the marketplace records (accounts, shops, catalog,
// orders, appointments, reviews) and the rules that belong to a single record.
package entity
