package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		xp        int
		gained    int
		wantLevel int
		wantXP    int
		wantUp    bool
	}{
		{"no gain", 1, 0, 0, 1, 0, false},
		{"gain below threshold", 1, 50, 30, 1, 80, false},
		{"exact threshold", 1, 95, 5, 2, 0, true},
		{"single level up", 1, 95, 10, 2, 5, true},
		{"multi level rollover", 3, 50, 260, 6, 10, true},
		{"big jump from zero", 1, 0, 1000, 11, 0, true},
		{"negative gain ignored", 2, 40, -5, 2, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.level, tt.xp, tt.gained)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantXP, got.XP)
			assert.Equal(t, XPPerLevel, got.XPToNext)
			assert.Equal(t, tt.wantUp, got.LeveledUp)
		})
	}
}

func TestApplyInvariants(t *testing.T) {
	// 0 <= newXP < 100 and newLevel = level + (xp+gained)/100 for valid inputs.
	for xp := 0; xp < XPPerLevel; xp += 7 {
		for gained := 0; gained <= 500; gained += 13 {
			got := Apply(1, xp, gained)
			assert.GreaterOrEqual(t, got.XP, 0)
			assert.Less(t, got.XP, XPPerLevel)
			assert.Equal(t, 1+(xp+gained)/XPPerLevel, got.Level)
		}
	}
}
