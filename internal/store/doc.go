// Package store defines the persistence interfaces and error kinds for
// to-do items. It abstracts the underlying database so the service layer
// depends only on behavior, not on a specific storage engine.
package store
