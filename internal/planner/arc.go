package planner

import (
	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/models"
)

const (
	toneMethodical = "methodical"
	toneTense      = "tense"
	toneUrgent     = "urgent"
	toneRevelatory = "revelatory"
)

// buildArc computes the three-act structure from the difficulty's configured
// act distribution. The act position ranges tile [1, clueCount] exactly.
func buildArc(difficulty catalog.Difficulty) models.NarrativeArc {
	distribution := difficulty.ActDistribution
	act1End := distribution.Act1
	act2End := act1End + distribution.Act2
	act3End := act2End + distribution.Act3

	return models.NarrativeArc{
		TotalClueCount: act3End,
		Acts: [3]models.ActInfo{
			{
				Act:           1,
				Name:          "act1_setup",
				ClueCount:     distribution.Act1,
				FirstPosition: 1,
				LastPosition:  act1End,
				Focus:         "survey the scene and clear the obvious",
				Tone:          toneMethodical,
			},
			{
				Act:           2,
				Name:          "act2_confrontation",
				ClueCount:     distribution.Act2,
				FirstPosition: act1End + 1,
				LastPosition:  act2End,
				Focus:         "press the remaining suspects",
				Tone:          toneTense,
			},
			{
				Act:           3,
				Name:          "act3_resolution",
				ClueCount:     distribution.Act3,
				FirstPosition: act2End + 1,
				LastPosition:  act3End,
				Focus:         "force the final deduction",
				Tone:          toneUrgent,
			},
		},
	}
}
