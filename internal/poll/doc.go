// Package poll drives a repeating check against the plugin API.
//
// A check reports how long to wait before it should run again. Failed
// checks back off exponentially from InitialInterval up to MaxBackoff, and
// a small random jitter is added to every wait so that many game servers
// sharing a webstore do not poll in lockstep.
package poll
