// Package storage is the record store shared by every QuizDesk component.
//
// A record collection ("users", "courses") is persisted and loaded as a
// single unit: every operation loads the whole collection, mutates it in
// memory and writes the whole collection back. There is no incremental
// update and no cache held across operations.
//
// The byte-level persistence is delegated to a Backend:
//
//   - jsonfile: one <name>.json file per collection (default, compatible
//     with files written by earlier versions)
//   - sqldb:    a single collections table in SQLite or PostgreSQL
//   - s3blob:   one object per collection in an S3-compatible bucket
//   - Memory:   in-process map, for tests and throwaway sessions
//
// Collection[T] handles JSON encoding on top of a Backend. Commit writes
// several staged collections; backends implementing Batcher do it in one
// transaction, the others write in the order given.
package storage
