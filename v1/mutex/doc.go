// Package mutex defines the minimal contract for mutual exclusion: a Mutex
// grants a closure exclusive access to the value it protects and hands back
// whatever the closure produces. The package ships no synchronization
// backend; concrete implementations (interrupt masking, atomic flags,
// hardware mutex peripherals) live downstream. Exclusive and Cell cover the
// degenerate cases where exclusivity already holds by construction.
//
// All shipped implementations use pointer receivers, so passing a
// *Exclusive or *Cell between functions forwards the same lock without any
// extra adapter.
package mutex
