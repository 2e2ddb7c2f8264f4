// Package wcache provides a bounded, thread-safe cache of weather snapshots
// keyed by city name.
//
// City names are case-folded, so "London", "LONDON" and "london" address the
// same entry. Every write stamps the entry with its store time.
//
// ## Eviction
//
// The cache holds at most its configured capacity. When an insert pushes the
// entry count over capacity, the least recently touched entry is evicted.
// Both writes and successful value reads count as a touch, so an actively
// queried city survives bursts of first-time lookups for other cities.
//
// ## Expiration
//
// Entries older than the configured TTL are stale. Staleness is computed at
// read time; there is no background sweep. A value read of a stale entry
// removes it and reports a miss, so stale data is never handed to a caller,
// but a stale entry that is never read again stays in Len and Keys until it
// is touched or evicted. Contains deliberately answers true for stale
// entries; use IsFresh to check validity.
package wcache
