package recommend

import (
	"testing"

	"github.com/abhisek/leetcoach/internal/catalog"
	"github.com/abhisek/leetcoach/internal/stats"
)

func TestDifficultyCeiling_NewUserGetsEasy(t *testing.T) {
	got := DifficultyCeiling(map[catalog.Difficulty]stats.DifficultyStat{}, 0.5)
	if got != catalog.Easy {
		t.Errorf("ceiling = %q, want Easy for a new user", got)
	}
}

func TestDifficultyCeiling_CompetentOnlyAtEasy(t *testing.T) {
	diffStats := map[catalog.Difficulty]stats.DifficultyStat{
		catalog.Easy:   {Attempted: 10, Solved: 8},
		catalog.Medium: {Attempted: 6, Solved: 1},
		catalog.Hard:   {Attempted: 2, Solved: 2},
	}
	// Hard ratio is perfect, but competence must hold at every level below.
	got := DifficultyCeiling(diffStats, 0.5)
	if got != catalog.Easy {
		t.Errorf("ceiling = %q, want Easy when Medium competence is missing", got)
	}
}

func TestDifficultyCeiling_ClimbsThroughCompetentLevels(t *testing.T) {
	diffStats := map[catalog.Difficulty]stats.DifficultyStat{
		catalog.Easy:   {Attempted: 10, Solved: 9},
		catalog.Medium: {Attempted: 8, Solved: 5},
		catalog.Hard:   {Attempted: 4, Solved: 3},
	}
	got := DifficultyCeiling(diffStats, 0.5)
	if got != catalog.Hard {
		t.Errorf("ceiling = %q, want Hard", got)
	}
}

func TestDifficultyCeiling_NoAttemptsAboveStopsClimb(t *testing.T) {
	diffStats := map[catalog.Difficulty]stats.DifficultyStat{
		catalog.Easy:   {Attempted: 10, Solved: 9},
		catalog.Medium: {Attempted: 4, Solved: 3},
	}
	got := DifficultyCeiling(diffStats, 0.5)
	if got != catalog.Medium {
		t.Errorf("ceiling = %q, want Medium when Hard has no attempts", got)
	}
}

func TestDifficultyCeiling_ThresholdIsInclusive(t *testing.T) {
	diffStats := map[catalog.Difficulty]stats.DifficultyStat{
		catalog.Easy: {Attempted: 10, Solved: 5},
	}
	got := DifficultyCeiling(diffStats, 0.5)
	if got != catalog.Easy {
		t.Errorf("ceiling = %q, want Easy at exactly the threshold", got)
	}
}
