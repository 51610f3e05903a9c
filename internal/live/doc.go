// Package live implements the polling live-match detector.
//
// The detector watches the current match set on a fixed interval and turns
// it into two signals: a throttled refresh trigger whenever a match is (or
// should be) in play, and a once-per-match starting-soon alert shortly
// before a scheduled start. It is app-lifecycle aware: backgrounding the
// host pauses detection, foregrounding resumes it.
package live
