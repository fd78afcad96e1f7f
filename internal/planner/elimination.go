package planner

import (
	"log/slog"
	"strings"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/rng"
)

// planCategoryEliminations partitions a category's non-solution elements
// into disjoint groups, each tagged with a mechanism, a target act and a
// priority. The union of the groups covers every input id exactly once.
func planCategoryEliminations(
	r *rng.Rand,
	category models.Category,
	elementIDs []string,
	difficulty catalog.Difficulty,
	solution models.Solution,
	c *catalog.Catalog,
	theme catalog.Theme,
) (models.CategoryEliminationPlan, error) {
	shuffled := rng.Shuffle(r, elementIDs)

	var groups []models.EliminationGroup
	// Streaming partition: consume chunks off the shuffled slice with a
	// cursor instead of repeated splicing.
	cursor := 0
	for cursor < len(shuffled) {
		remaining := len(shuffled) - cursor
		size := remaining
		if remaining > difficulty.MaxGroupSize {
			size = r.IntBetween(difficulty.MinGroupSize, difficulty.MaxGroupSize)
			if size > remaining {
				size = remaining
			}
		}

		ids := make([]string, size)
		copy(ids, shuffled[cursor:cursor+size])
		cursor += size

		index := len(groups)
		mechanism, err := pickMechanism(r, c, category, size)
		if err != nil {
			return models.CategoryEliminationPlan{}, err
		}
		clueContext, err := buildClueContext(r, mechanism, solution, c, theme)
		if err != nil {
			return models.CategoryEliminationPlan{}, err
		}

		groups = append(groups, models.EliminationGroup{
			Index:      index,
			ElementIDs: ids,
			Type:       mechanism.ID,
			TargetAct:  targetActFor(size, difficulty.MaxGroupSize),
			Priority:   index*10 - size*5,
			Context:    clueContext,
		})
	}

	return models.CategoryEliminationPlan{
		Category:      category,
		Groups:        groups,
		TotalElements: len(elementIDs),
		ClueCount:     len(groups),
	}, nil
}

// targetActFor encodes the pacing principle: broad strokes surface early,
// decisive single eliminations land late.
func targetActFor(size, maxGroupSize int) int {
	switch {
	case size >= 3 || size >= maxGroupSize:
		return 1
	case size == 2:
		return 2
	default:
		return 3
	}
}

// pickMechanism prefers mechanisms whose size class matches the group size
// and falls back to any mechanism legal for the category.
func pickMechanism(r *rng.Rand, c *catalog.Catalog, category models.Category, size int) (catalog.Mechanism, error) {
	allowed := c.MechanismsFor(category)
	class := catalog.SizeClassFor(size)

	var matching []catalog.Mechanism
	for _, mechanism := range allowed {
		if mechanism.SizeClass == class {
			matching = append(matching, mechanism)
		}
	}
	if len(matching) == 0 {
		matching = allowed
	}

	mechanism, err := rng.Pick(r, matching)
	if err != nil {
		return catalog.Mechanism{}, errors.Wrap(err, "pick mechanism",
			slog.String("category", string(category)))
	}
	return mechanism, nil
}

// buildClueContext attaches the auxiliary facts the text-generation stage
// needs to render the mechanism, always steering clear of the solution's own
// location, time or item category where the mechanism claims exclusivity.
func buildClueContext(
	r *rng.Rand,
	mechanism catalog.Mechanism,
	solution models.Solution,
	c *catalog.Catalog,
	theme catalog.Theme,
) (map[string]string, error) {
	switch mechanism.ID {
	case catalog.MechanismSeenElsewhere, catalog.MechanismAlibiWitnessed, catalog.MechanismAlibiDocumented:
		location, err := pickElementExcluding(r, c, models.CategoryLocation, solution.LocationID)
		if err != nil {
			return nil, err
		}
		timeOfDay, err := pickElementExcluding(r, c, models.CategoryTime, solution.TimeID)
		if err != nil {
			return nil, err
		}
		return map[string]string{"alibiLocation": location.Name, "alibiTime": timeOfDay.Name}, nil

	case catalog.MechanismPhysicalMismatch:
		trait, err := rng.Pick(r, []string{
			"a left-handed grip on the pry marks",
			"footprints two sizes too large",
			"fibres from a heavy travelling coat",
			"a climb nobody of their build could manage",
		})
		if err != nil {
			return nil, errors.Wrap(err, "pick mismatch trait")
		}
		return map[string]string{"trait": trait}, nil

	case catalog.MechanismItemRecovered:
		location, err := rng.Pick(r, c.Elements(models.CategoryLocation))
		if err != nil {
			return nil, errors.Wrap(err, "pick recovery location")
		}
		return map[string]string{"recoveredFrom": location.Name}, nil

	case catalog.MechanismWrongProfile:
		profile, err := rng.Pick(r, []string{
			"too bulky to slip past the cloakroom",
			"kept in a case that was never opened",
			"insured and photographed that same morning",
		})
		if err != nil {
			return nil, errors.Wrap(err, "pick item profile")
		}
		return map[string]string{"profile": profile}, nil

	case catalog.MechanismItemSecured:
		securedIn, err := pickSecuredPlace(r, c, theme)
		if err != nil {
			return nil, err
		}
		return map[string]string{"securedIn": securedIn}, nil

	case catalog.MechanismCategorySecured:
		tag, err := pickItemTagExcluding(r, c, solution.ItemID)
		if err != nil {
			return nil, err
		}
		return map[string]string{"itemCategory": tag}, nil

	case catalog.MechanismAlarmUntouched:
		system, err := rng.Pick(r, []string{"pressure plates", "window contacts", "motion sensors"})
		if err != nil {
			return nil, errors.Wrap(err, "pick alarm system")
		}
		return map[string]string{"system": system}, nil

	case catalog.MechanismGuardedArea:
		guard, err := pickElementExcluding(r, c, models.CategorySuspect, solution.SuspectID)
		if err != nil {
			return nil, err
		}
		return map[string]string{"postedGuard": guard.Name}, nil

	case catalog.MechanismLockedArea:
		keyHolder, err := rng.Pick(r, []string{"the estate manager", "the head housekeeper", "the security detail"})
		if err != nil {
			return nil, errors.Wrap(err, "pick key holder")
		}
		clueContext := map[string]string{"keyHolder": keyHolder}
		if len(theme.LockedLocations) > 0 {
			clueContext["knownSealed"] = strings.Join(theme.LockedLocations, ", ")
		}
		return clueContext, nil

	case catalog.MechanismNoAccessRoute:
		obstacle, err := rng.Pick(r, []string{
			"the corridor was under repair",
			"the staircase was roped off",
			"the service lift was out of order",
		})
		if err != nil {
			return nil, errors.Wrap(err, "pick access obstacle")
		}
		return map[string]string{"obstacle": obstacle}, nil

	case catalog.MechanismAlarmLog:
		logSource, err := rng.Pick(r, []string{
			"the vault pressure log",
			"the night watchman's punch clock",
			"the alarm company's register",
		})
		if err != nil {
			return nil, errors.Wrap(err, "pick log source")
		}
		return map[string]string{"logSource": logSource}, nil

	case catalog.MechanismWitnessPresent:
		witness, err := pickElementExcluding(r, c, models.CategorySuspect, solution.SuspectID)
		if err != nil {
			return nil, err
		}
		return map[string]string{"witness": witness.Name}, nil

	case catalog.MechanismVenueCrowded:
		gathering, err := rng.Pick(r, []string{
			"the toast in the ballroom",
			"the card game in the billiard room",
			"the fireworks on the lawn",
		})
		if err != nil {
			return nil, errors.Wrap(err, "pick gathering")
		}
		return map[string]string{"gathering": gathering}, nil

	case catalog.MechanismSecuritySweep:
		sweepBy, err := rng.Pick(r, []string{"the hired security", "the butler's rounds"})
		if err != nil {
			return nil, errors.Wrap(err, "pick sweep source")
		}
		return map[string]string{"sweepBy": sweepBy}, nil
	}

	return nil, nil
}

func pickElementExcluding(
	r *rng.Rand, c *catalog.Catalog, category models.Category, excludedID string,
) (catalog.Element, error) {
	var candidates []catalog.Element
	for _, element := range c.Elements(category) {
		if element.ID != excludedID {
			candidates = append(candidates, element)
		}
	}
	element, err := rng.Pick(r, candidates)
	if err != nil {
		return catalog.Element{}, errors.Wrap(err, "pick context element",
			slog.String("category", string(category)))
	}
	return element, nil
}

// pickSecuredPlace prefers the theme's typically locked locations.
func pickSecuredPlace(r *rng.Rand, c *catalog.Catalog, theme catalog.Theme) (string, error) {
	if len(theme.LockedLocations) > 0 {
		place, err := rng.Pick(r, theme.LockedLocations)
		if err != nil {
			return "", errors.Wrap(err, "pick locked location")
		}
		return place, nil
	}
	location, err := rng.Pick(r, c.Elements(models.CategoryLocation))
	if err != nil {
		return "", errors.Wrap(err, "pick secured location")
	}
	return location.Name, nil
}

// pickItemTagExcluding picks an item category tag different from the
// solution item's own tag.
func pickItemTagExcluding(r *rng.Rand, c *catalog.Catalog, solutionItemID string) (string, error) {
	solutionTag := ""
	if element, ok := c.Element(models.CategoryItem, solutionItemID); ok {
		solutionTag = element.Tag
	}

	seen := map[string]bool{}
	var tags []string
	for _, element := range c.Elements(models.CategoryItem) {
		if element.Tag == "" || element.Tag == solutionTag || seen[element.Tag] {
			continue
		}
		seen[element.Tag] = true
		tags = append(tags, element.Tag)
	}
	tag, err := rng.Pick(r, tags)
	if err != nil {
		return "", errors.Wrap(err, "pick item category tag")
	}
	return tag, nil
}

// checkPartition verifies that the groups form an exact partition of the
// input ids. A violation is a planner bug, never patched silently.
func checkPartition(category models.Category, elementIDs []string, groups []models.EliminationGroup) error {
	covered := map[string]int{}
	for _, group := range groups {
		for _, id := range group.ElementIDs {
			covered[id]++
		}
	}

	var errorList []error
	for _, id := range elementIDs {
		switch covered[id] {
		case 1:
			// Covered exactly once, as required.
		case 0:
			errorList = append(errorList, errors.New("element missing from elimination groups",
				slog.String("category", string(category)), slog.String("id", id)))
		default:
			errorList = append(errorList, errors.New("element appears in multiple elimination groups",
				slog.String("category", string(category)), slog.String("id", id)))
		}
	}
	if len(covered) != len(elementIDs) {
		errorList = append(errorList, errors.New("elimination groups contain unknown elements",
			slog.String("category", string(category))))
	}

	if len(errorList) != 0 {
		return errors.Join(errorList...)
	}
	return nil
}
