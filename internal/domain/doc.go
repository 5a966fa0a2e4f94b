// Package domain contains the core business entities and validation rules
// of the application: the to-do Item, its priority levels, and the
// invariants that must hold before anything is persisted. It has no
// dependency on storage, transport, or delivery concerns.
package domain
