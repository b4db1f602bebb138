// Package pong is the Pong simulation core.
//
// A Session owns the ball, both paddles, the score and the game state and is
// advanced one tick at a time by its host. It never draws anything itself:
// positions are handed to a Scene, score changes to a ScoreDisplay and the
// final result to a Banner. Sessions are not safe for concurrent use; the
// host delivers ticks, key events and resizes from a single goroutine.
package pong
