package runinfo

import "time"

// Info is the generation-run accounting record (§3): counters and
// optional phase timers, gated behind Config.MeasureRunTimes so a
// performance-sensitive caller doesn't pay for time.Now() calls it never
// asked for.
type Info struct {
	RunTime       time.Duration
	CandidateTime time.Duration
	TargetTime    time.Duration
	MHAlphaTime   time.Duration
	DRAlphaTime   time.Duration
	DRTime        time.Duration
	AMTime        time.Duration

	NumTargetCalls      int64
	NumDRs              int64
	NumOutOfSupport     int64
	NumOutOfSupportInDR int64
	NumRejections       int64
}

// Add returns the field-wise sum of two Info records, the combination
// rule §6 requires for cross-replica reporting: (a+b)+c == a+(b+c) and
// a+0 == a hold because every field is summed independently with +.
func (a Info) Add(b Info) Info {
	return Info{
		RunTime:       a.RunTime + b.RunTime,
		CandidateTime: a.CandidateTime + b.CandidateTime,
		TargetTime:    a.TargetTime + b.TargetTime,
		MHAlphaTime:   a.MHAlphaTime + b.MHAlphaTime,
		DRAlphaTime:   a.DRAlphaTime + b.DRAlphaTime,
		DRTime:        a.DRTime + b.DRTime,
		AMTime:        a.AMTime + b.AMTime,

		NumTargetCalls:      a.NumTargetCalls + b.NumTargetCalls,
		NumDRs:              a.NumDRs + b.NumDRs,
		NumOutOfSupport:     a.NumOutOfSupport + b.NumOutOfSupport,
		NumOutOfSupportInDR: a.NumOutOfSupportInDR + b.NumOutOfSupportInDR,
		NumRejections:       a.NumRejections + b.NumRejections,
	}
}
