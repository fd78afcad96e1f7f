package planner

import (
	"slices"
	"sort"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/rng"
)

// Chance of a clue honoring its mechanism's preferred speaker.
const preferredSpeakerBias = 0.7

// Chance of a clue referring back to earlier clues. Position 1 never does.
const backReferenceChance = 0.3

// candidate pairs a category with one of its elimination groups while the
// sequencer shuffles groups into the final clue order.
type candidate struct {
	category models.Category
	group    models.EliminationGroup
}

// sequenceClues orders the elimination groups of all four categories into
// the final, numbered clue sequence. Groups beyond the configured clue count
// are dropped by priority; that is why coverage is validated as a warning,
// not an error.
func sequenceClues(
	r *rng.Rand,
	plans []models.CategoryEliminationPlan,
	arc models.NarrativeArc,
	difficulty catalog.Difficulty,
	c *catalog.Catalog,
) ([]models.PlannedClue, error) {
	var all []candidate
	for _, plan := range plans {
		for _, group := range plan.Groups {
			all = append(all, candidate{category: plan.Category, group: group})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].group.TargetAct != all[j].group.TargetAct {
			return all[i].group.TargetAct < all[j].group.TargetAct
		}
		return all[i].group.Priority < all[j].group.Priority
	})

	// Drop the lowest-priority excess; the selection may not cover every
	// planned group at harder settings.
	selected := all
	var unused []candidate
	if len(all) > difficulty.ClueCount {
		selected = all[:difficulty.ClueCount]
		unused = all[difficulty.ClueCount:]
	}

	ordered := redistribute(r, selected, unused, difficulty)

	clues := make([]models.PlannedClue, 0, len(ordered))
	for i, cand := range ordered {
		position := i + 1
		act := arc.ActForPosition(position)

		delivery, err := pickDelivery(r, c, cand.group.Type)
		if err != nil {
			return nil, err
		}
		references, err := pickBackReferences(r, position)
		if err != nil {
			return nil, err
		}

		clues = append(clues, models.PlannedClue{
			Position: position,
			Act:      act.Act,
			Elimination: models.EliminationRef{
				Category:   cand.category,
				GroupIndex: cand.group.Index,
				ElementIDs: cand.group.ElementIDs,
				Type:       cand.group.Type,
				Context:    cand.group.Context,
			},
			Delivery: delivery,
			Narrative: models.Narrative{
				References: references,
				Tone:       toneForPosition(arc, position, len(ordered)),
			},
		})
	}
	return clues, nil
}

// redistribute reshapes the selected groups to match the per-act targets.
// Acts 1 and 3 fill from their own pools up to their targets; act 2 is the
// elastic buffer that absorbs everything else. A shortfall against the total
// is backfilled from unused groups via a reproducible shuffle-then-slice.
func redistribute(r *rng.Rand, selected, unused []candidate, difficulty catalog.Difficulty) []candidate {
	pools := map[int][]candidate{}
	for _, cand := range selected {
		pools[cand.group.TargetAct] = append(pools[cand.group.TargetAct], cand)
	}

	act1, overflow1 := takeUpTo(pools[1], difficulty.ActDistribution.Act1)
	act3, overflow3 := takeUpTo(pools[3], difficulty.ActDistribution.Act3)

	act2 := pools[2]
	act2 = append(act2, overflow1...)
	act2 = append(act2, overflow3...)

	shortfall := difficulty.ClueCount - (len(act1) + len(act2) + len(act3))
	if shortfall > 0 && len(unused) > 0 {
		backfill := rng.Shuffle(r, unused)
		if shortfall < len(backfill) {
			backfill = backfill[:shortfall]
		}
		act2 = append(act2, backfill...)
	}

	ordered := make([]candidate, 0, len(act1)+len(act2)+len(act3))
	ordered = append(ordered, act1...)
	ordered = append(ordered, act2...)
	ordered = append(ordered, act3...)
	return ordered
}

func takeUpTo(pool []candidate, target int) (taken, overflow []candidate) {
	if len(pool) <= target {
		return pool, nil
	}
	return pool[:target], pool[target:]
}

// pickDelivery biases toward the mechanism's preferred speaker, with a
// uniform fallback over all delivery types and speakers.
func pickDelivery(r *rng.Rand, c *catalog.Catalog, mechanismID string) (models.Delivery, error) {
	mechanism, ok := c.Mechanism(mechanismID)
	if ok && r.Bool(preferredSpeakerBias) {
		return models.Delivery{
			Type:    catalog.DeliveryTypeFor(mechanism.PreferredSpeaker),
			Speaker: mechanism.PreferredSpeaker,
		}, nil
	}

	deliveryType, err := rng.Pick(r, catalog.DeliveryTypes)
	if err != nil {
		return models.Delivery{}, errors.Wrap(err, "pick delivery type")
	}
	speaker, err := rng.Pick(r, catalog.Speakers)
	if err != nil {
		return models.Delivery{}, errors.Wrap(err, "pick speaker")
	}
	return models.Delivery{Type: deliveryType, Speaker: speaker}, nil
}

// pickBackReferences occasionally ties a clue back to one or two earlier
// positions, favoring recent ones.
func pickBackReferences(r *rng.Rand, position int) ([]int, error) {
	if position <= 1 || !r.Bool(backReferenceChance) {
		return nil, nil
	}

	count := r.IntBetween(1, 2)
	if count > position-1 {
		count = position - 1
	}

	candidates := make([]int, position-1)
	weights := make([]float64, position-1)
	for i := range candidates {
		candidates[i] = i + 1
		// Recency weighting: later positions weigh more.
		weights[i] = float64(i + 1)
	}

	var references []int
	for range count {
		pick, err := rng.PickWeighted(r, candidates, weights)
		if err != nil {
			return nil, errors.Wrap(err, "pick back reference")
		}
		references = append(references, pick)
		// Remove the pick so references stay distinct.
		idx := slices.Index(candidates, pick)
		candidates = append(candidates[:idx], candidates[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
		if len(candidates) == 0 {
			break
		}
	}
	slices.Sort(references)
	return references, nil
}

// toneForPosition escalates in discrete steps toward the finale.
func toneForPosition(arc models.NarrativeArc, position, total int) string {
	if position == total {
		return toneRevelatory
	}
	return arc.ActForPosition(position).Tone
}
