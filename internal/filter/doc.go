// Package filter provides the Prewitt gradient operator.
//
// The operator convolves the 3x3 neighborhood of a pixel with the two fixed
// Prewitt masks and reports the gradient magnitude as an 8-bit intensity.
// Functions here are pure: they read the input grid and never write.
package filter
