// Package orchestrator wires the API client, the response cache, the
// reconciler and the live detector together.
//
// It owns the only mutable view state: the current tournament's render
// list. Fetches go through the cache, concurrent duplicate fetches are
// collapsed, and detector refresh signals loop back into a refetch of the
// current event. A failed refetch keeps the previous list; stale data beats
// no data.
package orchestrator
