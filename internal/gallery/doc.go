// Package gallery implements an image lightbox navigator.
//
// The navigator keeps an ordered list of images and a cursor. Navigation is
// circular, so every index stays valid while the viewer is open. Adding or
// removing an image changes the backing Collection and rebuilds the list
// from it.
//
// Prev/next controls are visible only when there is more than one image.
package gallery
