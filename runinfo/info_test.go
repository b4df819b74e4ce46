package runinfo_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/dram/runinfo"
	"github.com/stretchr/testify/require"
)

func TestInfo_AddIsAssociativeAndHasIdentity(t *testing.T) {
	a := runinfo.Info{NumTargetCalls: 3, RunTime: time.Second}
	b := runinfo.Info{NumTargetCalls: 5, RunTime: 2 * time.Second}
	c := runinfo.Info{NumTargetCalls: 7, NumRejections: 1}

	require.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	require.Equal(t, a, a.Add(runinfo.Info{}))
}

func TestTimer_DisabledIsZeroCost(t *testing.T) {
	timer := runinfo.StartTimer(false)
	require.Equal(t, time.Duration(0), timer.Stop())
}

func TestTimer_EnabledMeasuresElapsed(t *testing.T) {
	timer := runinfo.StartTimer(true)
	time.Sleep(time.Millisecond)
	require.Greater(t, timer.Stop(), time.Duration(0))
}
