// Package runinfo tracks the sampler's counters and phase timers (§3),
// combinable additively across replicas for unified reporting (§6).
package runinfo
