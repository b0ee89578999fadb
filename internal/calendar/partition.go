package calendar

import (
	"sort"
	"time"
)

// Interval is the part of an event the partitioner needs. IDs must be unique.
type Interval struct {
	ID    int64
	Start time.Time
	End   time.Time
}

// Placement is the lane assignment of one event
type Placement struct {
	Lane      int
	LaneCount int
}

type activeLane struct {
	end  time.Time
	lane int
}

// Partition assigns lanes to the events of one resource on one day.
//
// Events are swept in (Start, End, ID) order; each takes the lowest lane not held
// by an event still running at its start (first fit). A cluster ends when no event
// is running, and every member of a cluster reports the cluster's max lane + 1.
// Touching ranges ([9,10) and [10,11)) do not overlap. First fit is greedy and can
// use one lane more than an optimal colouring for some inputs.
func Partition(items []Interval) map[int64]Placement {
	sorted := make([]Interval, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.ID < b.ID
	})

	result := make(map[int64]Placement, len(sorted))
	active := make([]activeLane, 0)
	cluster := make([]int64, 0)
	maxLane := -1

	closeCluster := func() {
		for _, id := range cluster {
			p := result[id]
			p.LaneCount = maxLane + 1
			result[id] = p
		}
		cluster = cluster[:0]
		maxLane = -1
	}

	for _, item := range sorted {
		// Освобождаем полосы событий, закончившихся до начала текущего
		kept := active[:0]
		for _, a := range active {
			if a.end.After(item.Start) {
				kept = append(kept, a)
			}
		}
		active = kept

		if len(active) == 0 && len(cluster) > 0 {
			closeCluster()
		}

		lane := firstFreeLane(active)
		active = append(active, activeLane{end: item.End, lane: lane})
		if lane > maxLane {
			maxLane = lane
		}

		result[item.ID] = Placement{Lane: lane}
		cluster = append(cluster, item.ID)
	}

	if len(cluster) > 0 {
		closeCluster()
	}

	return result
}

func firstFreeLane(active []activeLane) int {
	used := make(map[int]struct{}, len(active))
	for _, a := range active {
		used[a.lane] = struct{}{}
	}
	for lane := 0; ; lane++ {
		if _, taken := used[lane]; !taken {
			return lane
		}
	}
}
