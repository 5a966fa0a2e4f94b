// Package postgres provides the PostgreSQL implementation of the
// persistence interfaces defined in internal/store. It handles query
// execution, row mapping between database records and domain entities,
// and translation of driver errors into store error kinds.
package postgres
