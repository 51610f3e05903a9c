// Package model defines shared data types used across the snooker data core.
//
// Conventions:
//   - Timestamps: int64 microseconds since Unix epoch, 0 = unknown
//   - Optional integers (scores, winner id): *int, nil = not reported
//   - Status codes: 0 scheduled, 1 live, 2 on-break, 3 finished
package model
