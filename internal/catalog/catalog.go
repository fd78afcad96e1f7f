// Package catalog loads the closed game-element sets (suspects, items,
// locations, times, themes) and the per-difficulty planning settings from an
// embedded data file. Everything here is read-only configuration for the
// planner.
package catalog

import (
	_ "embed"
	"log/slog"

	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogDefinition []byte

var ErrUnknownDifficulty = errors.NewSentinel("unknown difficulty")

// Element is one entry of a closed catalog. Tag carries an optional grouping
// label, e.g. the item category used by category-wide eliminations.
type Element struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Tag  string `yaml:"tag,omitempty" json:"tag,omitempty"`
}

// Theme flavors a scenario. LockedLocations name locations that are
// typically sealed off in this theme, feeding locked-area clue context.
type Theme struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Description     string   `yaml:"description" json:"description"`
	LockedLocations []string `yaml:"lockedLocations" json:"lockedLocations,omitempty"`
}

// ActDistribution is the configured clue count per act.
type ActDistribution struct {
	Act1 int `yaml:"act1" json:"act1"`
	Act2 int `yaml:"act2" json:"act2"`
	Act3 int `yaml:"act3" json:"act3"`
}

// RedHerringSettings configure how many herrings a difficulty plants and
// whether each must be cleared before the finale.
type RedHerringSettings struct {
	Count       int  `yaml:"count" json:"count"`
	MustResolve bool `yaml:"mustResolve" json:"mustResolve"`
}

// Difficulty bundles the planning knobs for one difficulty level.
type Difficulty struct {
	Name               string             `yaml:"-" json:"name"`
	ClueCount          int                `yaml:"clueCount" json:"clueCount"`
	MinGroupSize       int                `yaml:"minGroupSize" json:"minGroupSize"`
	MaxGroupSize       int                `yaml:"maxGroupSize" json:"maxGroupSize"`
	ActDistribution    ActDistribution    `yaml:"actDistribution" json:"actDistribution"`
	RedHerrings        RedHerringSettings `yaml:"redHerrings" json:"redHerrings"`
	DramaticEventCount int                `yaml:"dramaticEventCount" json:"dramaticEventCount"`
}

type catalogFile struct {
	Suspects     []Element             `yaml:"suspects"`
	Items        []Element             `yaml:"items"`
	Locations    []Element             `yaml:"locations"`
	Times        []Element             `yaml:"times"`
	Themes       []Theme               `yaml:"themes"`
	Difficulties map[string]Difficulty `yaml:"difficulties"`
}

// Catalog is the immutable configuration consumed by the planner.
type Catalog struct {
	themes         []Theme
	elements       map[models.Category][]Element
	difficulties   map[string]Difficulty
	mechanisms     map[models.Category][]Mechanism
	mechanismsByID map[string]Mechanism
}

// Load parses and validates the embedded catalog definition.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogDefinition, &file); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog")
	}

	c := Catalog{
		themes: file.Themes,
		elements: map[models.Category][]Element{
			models.CategorySuspect:  file.Suspects,
			models.CategoryItem:     file.Items,
			models.CategoryLocation: file.Locations,
			models.CategoryTime:     file.Times,
		},
		difficulties:   map[string]Difficulty{},
		mechanisms:     mechanismsByCategory(),
		mechanismsByID: map[string]Mechanism{},
	}
	for name, difficulty := range file.Difficulties {
		difficulty.Name = name
		c.difficulties[name] = difficulty
	}
	for _, mechanisms := range c.mechanisms {
		for _, mechanism := range mechanisms {
			c.mechanismsByID[mechanism.ID] = mechanism
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errorList []error

	for _, category := range models.Categories {
		elements := c.elements[category]
		if len(elements) == 0 {
			errorList = append(errorList, errors.New("empty catalog",
				slog.String("category", string(category))))
			continue
		}
		seen := map[string]bool{}
		for _, element := range elements {
			if element.ID == "" || element.Name == "" {
				errorList = append(errorList, errors.New("element missing id or name",
					slog.String("category", string(category))))
			}
			if seen[element.ID] {
				errorList = append(errorList, errors.New("duplicate element id",
					slog.String("category", string(category)), slog.String("id", element.ID)))
			}
			seen[element.ID] = true
		}
	}

	if len(c.difficulties) == 0 {
		errorList = append(errorList, errors.New("no difficulties configured"))
	}
	for name, difficulty := range c.difficulties {
		distribution := difficulty.ActDistribution
		if sum := distribution.Act1 + distribution.Act2 + distribution.Act3; sum != difficulty.ClueCount {
			errorList = append(errorList, errors.New("act distribution does not sum to clue count",
				slog.String("difficulty", name),
				slog.Int("sum", sum),
				slog.Int("clueCount", difficulty.ClueCount)))
		}
		if difficulty.MinGroupSize < 1 || difficulty.MaxGroupSize < difficulty.MinGroupSize {
			errorList = append(errorList, errors.New("invalid group size bounds",
				slog.String("difficulty", name),
				slog.Int("min", difficulty.MinGroupSize),
				slog.Int("max", difficulty.MaxGroupSize)))
		}
	}

	if len(errorList) != 0 {
		return errors.Join(errorList...)
	}
	return nil
}

// Elements returns the full ordered element list for a category.
func (c *Catalog) Elements(category models.Category) []Element {
	return c.elements[category]
}

// ElementIDs returns the ordered element ids for a category.
func (c *Catalog) ElementIDs(category models.Category) []string {
	elements := c.elements[category]
	ids := make([]string, len(elements))
	for i, element := range elements {
		ids[i] = element.ID
	}
	return ids
}

// Element looks up one element by id.
func (c *Catalog) Element(category models.Category, id string) (Element, bool) {
	for _, element := range c.elements[category] {
		if element.ID == id {
			return element, true
		}
	}
	return Element{}, false
}

// ElementName resolves an element id to its display name. Unknown ids come
// back as the id itself so callers always have something printable.
func (c *Catalog) ElementName(category models.Category, id string) string {
	if element, ok := c.Element(category, id); ok {
		return element.Name
	}
	return id
}

// Themes returns all configured themes.
func (c *Catalog) Themes() []Theme {
	return c.themes
}

// Theme looks up a theme by id.
func (c *Catalog) Theme(id string) (Theme, bool) {
	for _, theme := range c.themes {
		if theme.ID == id {
			return theme, true
		}
	}
	return Theme{}, false
}

// Difficulty looks up a difficulty level by name.
func (c *Catalog) Difficulty(name string) (Difficulty, error) {
	difficulty, ok := c.difficulties[name]
	if !ok {
		return Difficulty{}, errors.Wrap(ErrUnknownDifficulty, "look up difficulty",
			slog.String("difficulty", name))
	}
	return difficulty, nil
}

// Difficulties returns the configured difficulty names.
func (c *Catalog) Difficulties() []string {
	names := make([]string, 0, len(c.difficulties))
	for name := range c.difficulties {
		names = append(names, name)
	}
	return names
}

// MechanismsFor returns the elimination mechanisms legal for a category.
func (c *Catalog) MechanismsFor(category models.Category) []Mechanism {
	return c.mechanisms[category]
}

// Mechanism looks up a mechanism by id.
func (c *Catalog) Mechanism(id string) (Mechanism, bool) {
	mechanism, ok := c.mechanismsByID[id]
	return mechanism, ok
}
