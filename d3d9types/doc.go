// Package d3d9types defines the caller-facing structures and enumerations of
// the legacy Direct3D 9 object model: pixel formats, memory pools, usage and
// lock flags, presentation and creation parameters, and the description
// structures returned by resources.
//
// The package is a leaf: it carries no behavior beyond bit tests and
// Stringers, so both the core object model and the native backends can
// depend on it without cycles. All enumeration values match the legacy API's
// numeric values so that callers round-tripping descriptions observe the
// exact bits they passed in.
package d3d9types
