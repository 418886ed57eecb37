// Package tui provides the Bubble Tea terminal front-end of the widgets.
//
// A menu opens one of three screens:
//   - Calculator: keyboard driven, division by zero shows an alert line
//   - Player: progress bar with click to seek, playlist, volume and autoplay
//   - Gallery: image list and a lightbox drawn with half-block cells,
//     navigated by arrow keys or a mouse swipe
//
// ctrl+b returns to the menu from any screen and ctrl+c quits.
package tui
