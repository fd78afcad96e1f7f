// Package models holds the value types that make up a campaign plan. A plan
// is assembled once by the planner and treated as immutable afterwards; the
// text-generation stage attaches rendered prose without touching these
// structures.
package models

import "time"

// Category identifies one of the four closed element catalogs.
type Category string

const (
	CategorySuspect  Category = "suspect"
	CategoryItem     Category = "item"
	CategoryLocation Category = "location"
	CategoryTime     Category = "time"
)

// Categories lists all categories in their canonical order. Planning code
// iterates this slice instead of ranging over maps so that every random draw
// happens in the same order for the same seed.
var Categories = []Category{CategorySuspect, CategoryItem, CategoryLocation, CategoryTime}

// Solution is the hidden truth the player deduces: exactly one element per
// category. Once selected it never changes and never appears in any
// elimination group of the same plan.
type Solution struct {
	SuspectID  string `json:"suspectId"`
	ItemID     string `json:"itemId"`
	LocationID string `json:"locationId"`
	TimeID     string `json:"timeId"`
}

// IDFor returns the solution element id for the given category.
func (s Solution) IDFor(category Category) string {
	switch category {
	case CategorySuspect:
		return s.SuspectID
	case CategoryItem:
		return s.ItemID
	case CategoryLocation:
		return s.LocationID
	case CategoryTime:
		return s.TimeID
	}
	return ""
}

// EliminationGroup is a batch of non-solution elements ruled out together by
// a single clue. Groups within a category are disjoint and together cover
// every non-solution element of that category.
type EliminationGroup struct {
	Index      int               `json:"index"`
	ElementIDs []string          `json:"elementIds"`
	Type       string            `json:"eliminationType"`
	TargetAct  int               `json:"targetAct"`
	Priority   int               `json:"priority"`
	Context    map[string]string `json:"context,omitempty"`
}

// CategoryEliminationPlan holds the full group partition for one category.
type CategoryEliminationPlan struct {
	Category      Category           `json:"category"`
	Groups        []EliminationGroup `json:"groups"`
	TotalElements int                `json:"totalElements"`
	ClueCount     int                `json:"clueCount"`
}

// EliminationRef points a clue at the group it delivers.
type EliminationRef struct {
	Category   Category          `json:"category"`
	GroupIndex int               `json:"groupIndex"`
	ElementIDs []string          `json:"elementIds"`
	Type       string            `json:"eliminationType"`
	Context    map[string]string `json:"context,omitempty"`
}

// Delivery describes how a clue reaches the player.
type Delivery struct {
	Type    string `json:"type"`
	Speaker string `json:"speaker"`
}

// Narrative carries the storytelling decorations of a clue.
type Narrative struct {
	References []int  `json:"references,omitempty"`
	ThreadID   string `json:"threadId,omitempty"`
	Tone       string `json:"tone"`
}

// PlannedClue is one step of the authoritative clue sequence. Position is
// 1-based and contiguous across the plan, assigned once during sequencing.
type PlannedClue struct {
	Position    int            `json:"position"`
	Act         int            `json:"act"`
	Elimination EliminationRef `json:"elimination"`
	Delivery    Delivery       `json:"delivery"`
	Narrative   Narrative      `json:"narrative"`
}

// ActInfo describes one narrative act and its contiguous position range.
type ActInfo struct {
	Act           int    `json:"act"`
	Name          string `json:"name"`
	ClueCount     int    `json:"clueCount"`
	FirstPosition int    `json:"firstPosition"`
	LastPosition  int    `json:"lastPosition"`
	Focus         string `json:"focus"`
	Tone          string `json:"tone"`
}

// NarrativeArc is the three-act structure. The act ranges tile
// [1, TotalClueCount] exactly.
type NarrativeArc struct {
	Acts           [3]ActInfo `json:"acts"`
	TotalClueCount int        `json:"totalClueCount"`
}

// ActForPosition maps a 1-based clue position to its act. Positions past the
// last range clamp to the resolution act.
func (a NarrativeArc) ActForPosition(position int) ActInfo {
	for _, act := range a.Acts {
		if position >= act.FirstPosition && position <= act.LastPosition {
			return act
		}
	}
	return a.Acts[2]
}

// NarrativeThread is a named grouping of clue positions that share a theme.
// Threads are derived from the sequenced clues and never affect solvability.
type NarrativeThread struct {
	ID            string `json:"id"`
	Theme         string `json:"theme"`
	CluePositions []int  `json:"cluePositions"`
}

// RedHerring points suspicion at an element that some earlier clue has
// already cleared. ResolvedInClue is zero when the herring is left dangling.
type RedHerring struct {
	Type             string   `json:"type"`
	Category         Category `json:"category"`
	ElementID        string   `json:"elementId"`
	IntroducedInClue int      `json:"introducedInClue"`
	ResolvedInClue   int      `json:"resolvedInClue,omitempty"`
}

// PlannedDramaticEvent interrupts the clue sequence after the given clue.
type PlannedDramaticEvent struct {
	AfterClue          int      `json:"afterClue"`
	EventType          string   `json:"eventType"`
	InvolvedSuspectIDs []string `json:"involvedSuspects,omitempty"`
	Purpose            string   `json:"purpose"`
}

// Validation issue codes.
const (
	CodeSolutionEliminated = "SOLUTION_ELIMINATED"
	CodeIncompleteCoverage = "INCOMPLETE_COVERAGE"
	CodeClueCountMismatch  = "CLUE_COUNT_MISMATCH"
)

// ValidationIssue is one finding of the plan validator.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CategoryCoverage reports how much of a category's planned eliminations the
// final clue sequence actually delivers.
type CategoryCoverage struct {
	PlannedElements    int      `json:"plannedElements"`
	EliminatedElements int      `json:"eliminatedElements"`
	MissingElementIDs  []string `json:"missingElementIds,omitempty"`
}

// ValidationResult is recomputed from a plan, never persisted on its own.
type ValidationResult struct {
	Valid    bool                          `json:"valid"`
	Errors   []ValidationIssue             `json:"errors"`
	Warnings []ValidationIssue             `json:"warnings"`
	Coverage map[Category]CategoryCoverage `json:"coverage,omitempty"`
}

// CampaignPlan is the aggregate root produced by one generation request.
type CampaignPlan struct {
	ID               string                               `json:"id"`
	Seed             int64                                `json:"seed"`
	ThemeID          string                               `json:"themeId"`
	Difficulty       string                               `json:"difficulty"`
	Solution         Solution                             `json:"solution"`
	EliminationPlans map[Category]CategoryEliminationPlan `json:"eliminationPlans"`
	Arc              NarrativeArc                         `json:"narrativeArc"`
	Clues            []PlannedClue                        `json:"clues"`
	Threads          []NarrativeThread                    `json:"threads,omitempty"`
	RedHerrings      []RedHerring                         `json:"redHerrings,omitempty"`
	DramaticEvents   []PlannedDramaticEvent               `json:"dramaticEvents,omitempty"`
	Validation       ValidationResult                     `json:"validation"`
	CreatedAt        time.Time                            `json:"createdAt"`
}

// Request describes one plan generation call. Exclusion lists constrain the
// solution pick only; excluded elements still take part in eliminations.
type Request struct {
	Difficulty       string   `json:"difficulty"`
	ThemeID          string   `json:"themeId,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
	ExcludeSuspects  []string `json:"excludeSuspects,omitempty"`
	ExcludeItems     []string `json:"excludeItems,omitempty"`
	ExcludeLocations []string `json:"excludeLocations,omitempty"`
	ExcludeTimes     []string `json:"excludeTimes,omitempty"`
}

// ExclusionsFor returns the request's exclusion list for a category.
func (r Request) ExclusionsFor(category Category) []string {
	switch category {
	case CategorySuspect:
		return r.ExcludeSuspects
	case CategoryItem:
		return r.ExcludeItems
	case CategoryLocation:
		return r.ExcludeLocations
	case CategoryTime:
		return r.ExcludeTimes
	}
	return nil
}
