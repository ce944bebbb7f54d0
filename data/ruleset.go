package data

import "fmt"

// Ruleset is a named set of legality constraints over moves.
type Ruleset struct {
	Tag         string
	BannedMoves map[string]bool
}

// RulesetHandler resolves a ruleset tag to its rules and checks move
// legality against a resolved ruleset.
type RulesetHandler interface {
	ResolveDefault(tag string) Ruleset
	IsMoveAllowed(moveID string, rs Ruleset) (bool, string)
}

// DefaultRulesetHandler is the engine's standard RulesetHandler: rulesets
// are a static, in-memory map of tag to banned-move set, loaded once at
// construction.
type DefaultRulesetHandler struct {
	rulesets map[string]Ruleset
}

// NewDefaultRulesetHandler wraps an already-loaded map of ruleset tag to
// Ruleset.
func NewDefaultRulesetHandler(rulesets map[string]Ruleset) *DefaultRulesetHandler {
	return &DefaultRulesetHandler{rulesets: rulesets}
}

// ResolveDefault implements RulesetHandler. An unknown tag resolves to an
// empty ruleset with no bans, rather than failing.
func (h *DefaultRulesetHandler) ResolveDefault(tag string) Ruleset {
	if rs, ok := h.rulesets[tag]; ok {
		return rs
	}
	return Ruleset{Tag: tag}
}

// IsMoveAllowed implements RulesetHandler.
func (h *DefaultRulesetHandler) IsMoveAllowed(moveID string, rs Ruleset) (bool, string) {
	if rs.BannedMoves != nil && rs.BannedMoves[moveID] {
		return false, fmt.Sprintf("%s is banned under the %s ruleset", moveID, rs.Tag)
	}
	return true, ""
}
