// Package contacts is the contact book core: an ordered, name-keyed set of
// name/phone records backed by a flat text file.
//
// # File format
//
// One record per line, name and phone separated by [Delimiter]:
//
//	Alice | 555-123-4567
//	Bob | 555-1234
//
// Phones are always stored in display form (DDD-DDDD or DDD-DDD-DDDD).
// Lines that do not match are skipped on load and reported as [Diagnostic]
// values, never printed.
//
// # Identity
//
// Names compare case-insensitively, ignoring surrounding whitespace and runs
// of inner whitespace. A [Store] never holds two contacts with equal names
// unless the file it was loaded from already did, in which case lookups
// resolve to the first one.
//
// # Persistence
//
// [Store.AddOrUpdate] saves before it returns. [Store.Delete] only mutates
// memory; callers follow a [Deleted] outcome with [Store.Save]. Save failures
// wrap [ErrPersistence] and leave the in-memory contacts untouched.
//
// A Store is not safe for concurrent use.
package contacts
