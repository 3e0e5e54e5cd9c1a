// Package stormguard rate-limits external notification delivery per
// (category, severity, time-bucket) so a bursty event source cannot flood
// downstream gateways.
//
// The guard uses fixed-window counters keyed by category, severity, and the
// window-aligned bucket timestamp. Counters are per-key atomics behind the
// Store interface; MemoryStore serves a single instance and RedisStore
// shares one budget across instances.
//
// A rejected event is not lost: callers still persist it and keep the in-app
// channel, suppressing only the external fan-out.
package stormguard
