// Package asyncslot bridges a background fetch into a cooperative,
// single-threaded render loop.
//
// A Slot is NotStarted until Trigger is called, Pending while the fetch
// runs, then Ready or Failed once Poll observes the result. While Pending,
// further Trigger calls are ignored, so at most one request is ever in
// flight. The render loop calls Poll on every tick; Poll never blocks.
//
//	var slot asyncslot.Slot[*weather.Report]
//	slot.Trigger(ctx, client.Fetch)
//	...
//	switch slot.Poll() {
//	case asyncslot.Ready:
//	    report, _ := slot.Value()
//	}
//
// There is no cancellation: a failed or slow request is superseded by the
// next Trigger once it completes. Timeouts belong to the fetch function and
// surface as Failed.
package asyncslot
