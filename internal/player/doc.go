// Package player simulates a music player.
//
// No audio is decoded. A periodic tick advances a simulated playback
// position one second at a time; when it reaches the track duration the track
// ends and, with autoplay, the next one starts.
//
// State holds the pure transitions and returns Effects describing what the
// owner must do with the tick source. Player is the ready-made owner: it runs
// the tick on a Scheduler and pushes a View to a Renderer after each change.
package player
