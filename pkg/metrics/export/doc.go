/*
Package export periodically snapshots a Prometheus gatherer's metric
families into a Redis hash, so multiple enkiTS instances' scheduler
metrics can be aggregated on a dashboard without each instance exposing
its own /metrics endpoint to a scraper.

This is strictly an observability convenience: nothing in this package
participates in scheduling, and a Redis outage only degrades visibility,
never task execution.
*/
package export
