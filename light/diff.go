package light

import (
	"github.com/lixenwraith/lightbeam/component"
	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/vmath"
)

// SensorNotice tells the sensor sink a target started or stopped being struck
type SensorNotice struct {
	Target core.Entity
	Hit    bool
}

// Bounce is a fresh bounce that should trigger audio and sparks
type Bounce struct {
	Target core.Entity
	Point  vmath.Vec2
	Index  int
}

// DiffResult is the outcome of reconciling a new chain with the stored one
type DiffResult struct {
	// Points is the list the segment pool renders, possibly retracted
	Points   []vmath.Vec2
	Notices  []SensorNotice
	Bounces  []Bounce
	Diverged bool
	// Index is the first divergent bounce position, valid when Diverged
	Index int
}

// Diff reconciles pb with prev, mutating prev and the source travel budget
// At most one divergence is resolved per call; the rest settles on later steps
func Diff(src *component.BeamSourceComponent, prev *component.PlaybackStateComponent, pb Playback) DiffResult {
	var res DiffResult
	base := pb.Points(src.Origin)
	n := len(pb.Intersections)

	for i := 0; ; i++ {
		var next component.Intersection
		hasNext := i < n
		if hasNext {
			next = pb.Intersections[i]
		}
		old, hasOld := prev.Get(i)

		if hasNext && hasOld && next.Target == old.Target {
			prev.Set(i, next)
			continue
		}

		if !hasNext && !hasOld && !hasValidFrom(prev, i+1) {
			break
		}

		res.Diverged = true
		res.Index = i

		removed := false
		if hasOld {
			res.Notices = append(res.Notices, SensorNotice{Target: old.Target, Hit: false})
			src.TravelBudget = old.Distance
			prev.Invalidate(i)
			removed = true
		}
		for j := i + 1; j < len(prev.Slots); j++ {
			if stale, ok := prev.Get(j); ok {
				res.Notices = append(res.Notices, SensorNotice{Target: stale.Target, Hit: false})
			}
		}

		added := false
		if hasNext && (!hasOld || next.Distance < old.Distance) {
			res.Notices = append(res.Notices, SensorNotice{Target: next.Target, Hit: true})
			prev.Set(i, next)
			src.TravelBudget = next.Distance
			added = true

			if !hasOld && !src.Color.Silent() {
				res.Bounces = append(res.Bounces, Bounce{Target: next.Target, Point: next.Point, Index: i})
			}
		}

		prev.Truncate(i + 1)

		keep := min(i+1, len(base))
		points := make([]vmath.Vec2, keep, keep+1)
		copy(points, base[:keep])
		switch {
		case added:
			points = append(points, next.Point)
		case removed:
			points = append(points, old.Point)
		}
		res.Points = points
		return res
	}

	src.TravelBudget = pb.Elapsed
	res.Points = base
	return res
}

func hasValidFrom(p *component.PlaybackStateComponent, from int) bool {
	for j := from; j < len(p.Slots); j++ {
		if p.Slots[j].Valid {
			return true
		}
	}
	return false
}
