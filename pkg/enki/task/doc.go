// Package task defines the work-set contract consumed by pkg/enki/scheduler.
//
// A Set is the caller-supplied unit of parallel work: a known length and
// an ExecuteRange callback invoked concurrently on disjoint sub-ranges.
// The scheduler never allocates or copies the caller's data; it only
// partitions [0, Len()) into Range values and calls ExecuteRange on them
// from whichever worker picks up that partition.
package task
