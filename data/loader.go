package data

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/FrostyKingzly/PokebotRANKED/itemfx"
)

// movesFile is the on-disk shape of a YAML move descriptor table.
type movesFile struct {
	Moves []Move `yaml:"moves"`
}

// LoadMovesDB parses a YAML document into a MapMovesDB.
func LoadMovesDB(raw []byte) (*MapMovesDB, error) {
	var doc movesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("data: parse moves table: %w", err)
	}
	byID := make(map[string]*Move, len(doc.Moves))
	for i := range doc.Moves {
		byID[doc.Moves[i].ID] = &doc.Moves[i]
	}
	return &MapMovesDB{moves: byID}, nil
}

// MapMovesDB is a MovesDB backed by an in-memory map.
type MapMovesDB struct {
	moves map[string]*Move
}

// GetMove implements MovesDB.
func (m *MapMovesDB) GetMove(moveID string) (*Move, bool) {
	move, ok := m.moves[moveID]
	return move, ok
}

// itemsFile is the on-disk shape of a YAML item descriptor table.
type itemsFile struct {
	Items []itemEntry `yaml:"items"`
}

type itemEntry struct {
	ID                     string  `yaml:"id"`
	Name                   string  `yaml:"name"`
	TypeBoost              string  `yaml:"type_boost"`
	CategoryBoost          string  `yaml:"category_boost"`
	DefenseBoostCategory   string  `yaml:"defense_boost_category"`
	PowerMultiplierValue   float64 `yaml:"power_multiplier"`
	DefenseMultiplierValue float64 `yaml:"defense_multiplier"`
	ForbidsStatusMoves     bool    `yaml:"forbids_status_moves"`
	IsChoiceItem           bool    `yaml:"is_choice_item"`
	PreventsKO             bool    `yaml:"prevents_ko"`
	RequiresFullHP         bool    `yaml:"requires_full_hp"`
	ActivationChance       float64 `yaml:"activation_chance"`
	OneTimeUse             bool    `yaml:"one_time_use"`
	RecoilPercent          float64 `yaml:"recoil_percent"`
	HealPercent            float64 `yaml:"heal_percent"`
	SpeedMultiplier        float64 `yaml:"speed_multiplier"`
}

// LoadItemsDB parses a YAML document into a MapItemsDB.
func LoadItemsDB(raw []byte) (*MapItemsDB, error) {
	var doc itemsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("data: parse items table: %w", err)
	}
	byID := make(map[string]*itemfx.Item, len(doc.Items))
	for _, e := range doc.Items {
		byID[e.ID] = &itemfx.Item{
			ID:                     e.ID,
			Name:                   e.Name,
			TypeBoost:              e.TypeBoost,
			CategoryBoost:          e.CategoryBoost,
			DefenseBoostCategory:   e.DefenseBoostCategory,
			PowerMultiplierValue:   e.PowerMultiplierValue,
			DefenseMultiplierValue: e.DefenseMultiplierValue,
			ForbidsStatusMoves:     e.ForbidsStatusMoves,
			IsChoiceItem:           e.IsChoiceItem,
			PreventsKO:             e.PreventsKO,
			RequiresFullHP:         e.RequiresFullHP,
			ActivationChance:       e.ActivationChance,
			OneTimeUse:             e.OneTimeUse,
			RecoilPercent:          e.RecoilPercent,
			HealPercent:            e.HealPercent,
			SpeedMultiplier:        e.SpeedMultiplier,
		}
	}
	return NewMapItemsDB(byID), nil
}

// speciesFile is the on-disk shape of a YAML species descriptor table.
type speciesFile struct {
	Species []Species `yaml:"species"`
}

// LoadSpeciesDB parses a YAML document into a MapSpeciesDB.
func LoadSpeciesDB(raw []byte) (*MapSpeciesDB, error) {
	var doc speciesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("data: parse species table: %w", err)
	}
	byDex := make(map[int]*Species, len(doc.Species))
	for i := range doc.Species {
		byDex[doc.Species[i].DexNumber] = &doc.Species[i]
	}
	return NewMapSpeciesDB(byDex), nil
}

// typeChartFile is the on-disk shape of a YAML type-effectiveness table.
type typeChartFile struct {
	Chart map[string]map[string]float64 `yaml:"chart"`
}

// LoadTypeChart parses a YAML document into a MapTypeChart.
func LoadTypeChart(raw []byte) (*MapTypeChart, error) {
	var doc typeChartFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("data: parse type chart: %w", err)
	}
	return NewMapTypeChart(doc.Chart), nil
}

// rulesetsFile is the on-disk shape of a YAML ruleset table.
type rulesetsFile struct {
	Rulesets []rulesetEntry `yaml:"rulesets"`
}

type rulesetEntry struct {
	Tag         string   `yaml:"tag"`
	BannedMoves []string `yaml:"banned_moves"`
}

// LoadRulesetHandler parses a YAML document into a DefaultRulesetHandler.
func LoadRulesetHandler(raw []byte) (*DefaultRulesetHandler, error) {
	var doc rulesetsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("data: parse rulesets table: %w", err)
	}
	byTag := make(map[string]Ruleset, len(doc.Rulesets))
	for _, e := range doc.Rulesets {
		banned := make(map[string]bool, len(e.BannedMoves))
		for _, id := range e.BannedMoves {
			banned[id] = true
		}
		byTag[e.Tag] = Ruleset{Tag: e.Tag, BannedMoves: banned}
	}
	return NewDefaultRulesetHandler(byTag), nil
}
