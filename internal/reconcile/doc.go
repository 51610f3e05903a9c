// Package reconcile turns raw match records into a renderable list.
//
// Build is a pure function: it deduplicates records that describe the same
// physical match under different ids, partitions them into display
// categories, orders each category, and interleaves status and round
// headers. It never fails; malformed fields degrade to safe defaults.
package reconcile
