// Package alias holds the in-memory alias mapping and the rules for changing
// it. Lookups resolve a short name to its command; Upsert inserts a new alias
// or, after confirmation, overwrites an existing one and persists the result.
package alias
