/*
Package enkits is a lock-less, work-stealing task scheduler for data-parallel
work, modeled on Doug Binks' enkiTS. It partitions a caller-supplied
WorkSet into ranges distributed across a fixed pool of workers, each
draining its own lock-less pipe and stealing from peers when idle.

See pkg/enki/scheduler for the scheduler itself, pkg/enki/task for the
WorkSet contract, pkg/enki/pipe for the underlying ring buffer,
pkg/enki/periodic for cron-driven WorkSet resubmission, and pkg/metrics
for Prometheus instrumentation.
*/
package enkits
