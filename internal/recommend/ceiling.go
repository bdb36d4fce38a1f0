package recommend

import (
	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/stats"
)

// DifficultyCeiling computes the hardest difficulty the user is judged
// competent at. Walking Easy to Hard, the ceiling advances while each level
// shows a solve ratio meeting the threshold; it stops at the first level the
// user has not demonstrated competence at, whether through poor results or
// no attempts at all. The ceiling never drops below Easy, so an entirely new
// user still gets Easy recommendations.
//
// The ceiling is a hard constraint: the scorer excludes anything strictly
// harder, regardless of topic match.
func DifficultyCeiling(diffStats map[catalog.Difficulty]stats.DifficultyStat, threshold float64) catalog.Difficulty {
	ceiling := catalog.Easy

	for _, level := range catalog.Levels {
		ds := diffStats[level]
		if ds.Attempted == 0 {
			break
		}
		if float64(ds.Solved)/float64(ds.Attempted) < threshold {
			break
		}
		ceiling = level
	}
	return ceiling
}
