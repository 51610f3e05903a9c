// Package cache implements the time-boxed response cache.
//
// Entries carry a per-entry TTL chosen by endpoint family: live match data
// expires in seconds, rankings in minutes. Expired entries are treated as
// misses and lazily evicted; a background sweep removes them on a fixed
// interval independent of request traffic.
//
// Cross-endpoint consistency is invalidate-on-write: storing a match detail
// marks the containing event's list keys stale rather than patching cached
// slices in place.
package cache
