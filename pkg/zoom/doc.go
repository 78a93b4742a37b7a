// Package zoom computes the display size of pages for a fit policy.
//
// A [Settings] value (or the mutable [Model] wrapping one) describes how
// pages are fitted to the screen ([FitMode]), whether they may be enlarged,
// and the user's zoom level. [ZoomedSize] turns page sizes into display sizes
// in four stages:
//
//  1. [FixPageSizes] gives all pages of a spread the same height (or width
//     when reading top-to-bottom).
//  2. [CalcLimits] turns the fit mode into per-axis pixel caps.
//  3. [PreferredScale] and [ScaleDistributed] find per-page scales that
//     respect those caps. The latter distributes the rounding error of pages
//     laid end-to-end so that they fill the screen without overflowing it.
//  4. The user zoom, 2^(log/4), is applied on top.
//
// All functions are pure; only [Model] holds state.
package zoom
