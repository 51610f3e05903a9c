// Package api provides the snooker.org REST API client.
//
// The API is a single endpoint (https://api.snooker.org/) dispatched on the
// "t" query parameter:
//   - t=3  event details
//   - t=5  season events
//   - t=6  matches of an event
//   - t=10 players
//   - t=11 rankings
//   - t=20 current season
//
// All requests carry the X-Requested-By header the API requires.
package api
