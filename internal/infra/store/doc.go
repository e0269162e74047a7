// Package store is the record store every collection is built on.
//
// A [Collection] wraps one gorm model (one table) and the secondary indexes
// declared for it. Indexes are created by [Collection.Migrate] and are the
// only way to address records other than by identity:
//
//   - Lookup / LookupFirst / Count / DeleteBy take an index name plus one
//     value per indexed column.
//   - Upsert converges on a unique index with a single
//     INSERT ... ON CONFLICT DO UPDATE, so two writers racing on the same key
//     can never produce two rows.
//   - InsertIfAbsent converges on a unique index with ON CONFLICT DO NOTHING.
//
// Identities are UUIDs assigned on insert and never reused. Scans return
// records in stable store order (created_at, id); any presentation order is
// the caller's job.
package store
