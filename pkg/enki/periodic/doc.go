/*
Package periodic resubmits a WorkSet to a scheduler on a cron schedule.
It is a thin layer above pkg/enki/scheduler: each Job owns a
robfig/cron/v3 Schedule and a factory that builds a fresh task.Set per
tick, since a WorkSet's completion counter can't be reused across runs.

This package makes no scheduling-fairness or exactly-once guarantees
beyond what time.Timer already provides: a slow tick can overlap the
next if the previous run's WorkSet hasn't completed by the time the
next one fires. Callers that need serialized runs should wait on the
previous WorkSet inside the factory itself, or track overlap externally.
*/
package periodic
