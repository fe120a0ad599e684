// Package engine implements the ball physics core: per-tick gravity,
// boundary reflection, hard containment and the collision-triggered split
// state machine applied to a growing collection of [Ball] entities.
//
// The engine is single-threaded. A [World] exclusively owns its ball
// collection and advances it one tick at a time via [World.Step]; frontends
// read state between steps through [World.Snapshot].
//
//   - [Ball.Update]: per-tick physics for one entity
//   - [Ball.Split]: replaces a splittable parent with two diverging children
//   - [World.Step]: spawn commands, per-ball updates, split resolution
//
// Balls never collide with each other, only with the boundary circle, so
// per-ball updates are independent and the step outcome does not depend on
// iteration order beyond the insertion order of new children.
package engine
