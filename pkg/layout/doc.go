// Package layout arranges a finite number of pages inside a viewport.
//
// Pages are laid end-to-end along the distribution axis, spaced
// [box.DefaultSpacing] pixels apart, and centered on the alignment axis. The
// arrangement is then wrapped in a union box that is at least as large as
// the viewport, so a single small page ends up centered on screen.
//
// # Reading direction
//
// The orientation vector says which way reading proceeds on each axis. For
// right-to-left manga the distribution axis has orientation -1: the first
// page is placed on the right, yet [Layout.ContentBoxes] still returns pages
// in reading order.
//
// # Scrolling
//
// [Layout.ScrollToPredefined] moves the viewport to the start, end or
// center of the content per axis. [ScrollStart] and [ScrollEnd] follow the
// reading direction, while [ScrollBackward] and [ScrollForward] always refer
// to smaller and larger coordinates.
package layout
