// Package dragdrop turns drag gesture events from a host UI layer into four
// stable callbacks (start, over, drop, end) and keeps the bookkeeping for a
// single drag session: the source index and the "dragging" CSS flag.
//
// The host adapts its native events to the Event interface. The source index
// lives on a Session owned by the Adapter and is mirrored into the transfer
// channel so drops coming from another element or frame still resolve. A drop
// whose source index cannot be resolved is ignored.
//
// Adapters are not safe for concurrent use; event dispatch is expected to be
// single-threaded.
package dragdrop
