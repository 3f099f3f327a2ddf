// Package models defines the core domain models for the hierarchy store.
//
// # Entities
//
//   - Client: an organization the hierarchy is maintained for
//   - Category: a process group referenced by clients
//   - Subgroup: a subdivision of a category
//   - Process: a leaf entity referenced by subgroups
//   - User: a registered account with favorites and an optional team
//   - Team: a named group of users with a required leader
//   - ClientSettings: per-(user, client) visibility overrides
//
// # Design Principles
//
// 1. **Id-list references**: cross-entity relationships are stored as lists of
// id strings, never as embedded copies or pointers. The store has no referential
// integrity, so both sides of an edge are kept consistent by the service layer.
//
// 2. **Insertion order is display order**: reference lists preserve the order in
// which ids were attached, and duplicates are tolerated where the operation
// surface allows them.
//
// 3. **Soft visibility**: each hierarchy entity carries its own global Hidden
// flag; ClientSettings layers per-user overrides on top without touching it.
package models
