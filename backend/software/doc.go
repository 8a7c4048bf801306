// Package software implements the backend interfaces entirely on the CPU.
//
// Every texture keeps plain byte storage per mip level, so any pool maps
// instantly and copies are memcpy loops. The implementation is deterministic
// and always available, which makes it the reference backend for the test
// suite. SetBusy simulates outstanding GPU work so callers can exercise the
// do-not-wait map path.
//
// Importing the package registers it under the name "software".
package software
