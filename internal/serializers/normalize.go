package serializers

import (
	"strings"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/types"
)

// The upstream dataset is hand-entered and some ability names are misspelled
// at the source. The table maps every misspelling seen in the wild to its
// canonical name; anything not covered fails parsing instead of being stored
// verbatim.
var abilityMisspellings = map[string]types.Ability{
	"inteligence": types.AbilityIntelligence,
	"intellgence": types.AbilityIntelligence,
	"intellignce": types.AbilityIntelligence,
	"intellignece": types.AbilityIntelligence,
	"strengh":     types.AbilityStrength,
	"strenght":    types.AbilityStrength,
	"dextarity":   types.AbilityDexterity,
	"dexteirty":   types.AbilityDexterity,
	"constition":  types.AbilityConstitution,
	"consitution": types.AbilityConstitution,
	"widsom":      types.AbilityWisdom,
	"charimsa":    types.AbilityCharisma,
}

// Free-boost phrasings that are not misspellings but still vary upstream.
var freeBoostForms = map[string]types.AbilityBoost{
	"free":     types.BoostFree,
	"two_free": types.BoostTwoFree,
	"two free": types.BoostTwoFree,
	"2 free":   types.BoostTwoFree,
}

// NormalizeAbilityBoost maps free-text ability-boost values, misspellings
// included, onto the closed AbilityBoost vocabulary.
func NormalizeAbilityBoost(s string) (types.AbilityBoost, error) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if boost, err := types.ParseAbilityBoost(cleaned); err == nil {
		return boost, nil
	}
	if ability, ok := abilityMisspellings[cleaned]; ok {
		return types.AbilityBoost(ability), nil
	}
	if boost, ok := freeBoostForms[cleaned]; ok {
		return boost, nil
	}
	return "", apierr.UnknownEnumValue("ability boost", s)
}

// NormalizeAbility is NormalizeAbilityBoost restricted to real abilities
// (flaws cannot be "free").
func NormalizeAbility(s string) (types.Ability, error) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	if ability, err := types.ParseAbility(cleaned); err == nil {
		return ability, nil
	}
	if ability, ok := abilityMisspellings[cleaned]; ok {
		return ability, nil
	}
	return "", apierr.UnknownEnumValue("ability", s)
}

// ParseLanguages extracts language names from the upstream markdown field,
// which lists each language as a bracketed link followed by prose:
// "[Common] some text, [Draconic] some text" -> ["Common", "Draconic"].
func ParseLanguages(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ", ")
	languages := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, "[") {
			// Prose fragment that happened to contain a comma, not a new
			// language entry.
			continue
		}
		name := strings.TrimPrefix(part, "[")
		if i := strings.Index(name, "]"); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(name)
		if name != "" {
			languages = append(languages, name)
		}
	}
	return languages
}
