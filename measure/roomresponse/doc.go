// Package roomresponse implements the acoustic measurement core of a
// room-response analyzer: reference-sweep deconvolution, fractional-octave
// smoothing, 1 kHz-anchored normalization, log-frequency resampling for
// display, and closed-form room-mode prediction from room dimensions.
//
// # Pipeline
//
// A single call to [Analyze] sequences the components end to end:
//
//	recording --align--> --deconvolve--> --window--> --spectrum-->
//	  --smooth--> --normalize--> --resample--> Result
//
// Room dimensions, when supplied, are analyzed independently by
// [RoomModes] and attached to the same [Result].
//
// The package is read-only and allocation-scoped per call: a
// [Registry] is built once and shared across goroutines; nothing else
// in the package retains state between calls.
package roomresponse
