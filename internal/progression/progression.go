// Package progression implements the level/XP arithmetic shared by per-stat
// and overall dog progression. The curve is flat: every level costs 100 XP.
package progression

// XPPerLevel is the fixed threshold for every level.
const XPPerLevel = 100

type Result struct {
	Level     int  `json:"level"`
	XP        int  `json:"xp"`
	XPToNext  int  `json:"xp_to_next"`
	LeveledUp bool `json:"leveled_up"`
}

// Apply adds gained XP to the current level/xp pair and rolls over as many
// levels as the total covers. Pure and side-effect free; negative gains are
// treated as zero.
func Apply(level, xp, gained int) Result {
	if gained < 0 {
		gained = 0
	}

	newLevel := level
	newXP := xp + gained
	for newXP >= XPPerLevel {
		newLevel++
		newXP -= XPPerLevel
	}

	return Result{
		Level:     newLevel,
		XP:        newXP,
		XPToNext:  XPPerLevel,
		LeveledUp: newLevel > level,
	}
}
