// Package store provides SQLite-backed persistence for validated recipe
// documents. It is the downstream collaborator of the editor: a Store
// implements editor.Persister.
//
// Each recipe is kept three ways:
//   - recipes: the current document as JSON plus its version and modes
//   - recipe_revisions: every saved payload, keyed by (recipe_id, version)
//   - recipe_sections, recipe_items: the section orders and item positions
//     of the current version, for queries that should not parse JSON
//
// # Ordering
//
// Writes take a logical sequence number (MAX(seq)+1), never a timestamp.
// Listing queries order by seq, then id COLLATE BINARY, so results are
// identical across runs.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
