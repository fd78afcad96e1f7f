package planner

import (
	"testing"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestBuildArcTilesPositions(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, name := range []string{"easy", "medium", "hard", "expert"} {
		t.Run(name, func(t *testing.T) {
			difficulty, err := c.Difficulty(name)
			require.NoError(t, err)

			arc := buildArc(difficulty)
			require.Equal(t, difficulty.ClueCount, arc.TotalClueCount)

			require.Equal(t, 1, arc.Acts[0].FirstPosition)
			for i := 1; i < 3; i++ {
				require.Equal(t, arc.Acts[i-1].LastPosition+1, arc.Acts[i].FirstPosition)
			}
			require.Equal(t, difficulty.ClueCount, arc.Acts[2].LastPosition)

			// Every position maps to exactly the act whose range holds it.
			for position := 1; position <= arc.TotalClueCount; position++ {
				act := arc.ActForPosition(position)
				require.GreaterOrEqual(t, position, act.FirstPosition)
				require.LessOrEqual(t, position, act.LastPosition)
			}
		})
	}
}

func TestBuildArcActMetadata(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)
	difficulty, err := c.Difficulty("medium")
	require.NoError(t, err)

	arc := buildArc(difficulty)
	require.Equal(t, "act1_setup", arc.Acts[0].Name)
	require.Equal(t, "act2_confrontation", arc.Acts[1].Name)
	require.Equal(t, "act3_resolution", arc.Acts[2].Name)
	for i, act := range arc.Acts {
		require.Equal(t, i+1, act.Act)
		require.NotEmpty(t, act.Focus)
		require.NotEmpty(t, act.Tone)
	}
}
