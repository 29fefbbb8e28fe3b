package types

import (
	"strings"

	"github.com/DaBenjle/aonapi/internal/apierr"
)

// Closed vocabularies for the text fields the upstream dataset uses. Upstream
// text is free-form and inconsistently cased, so every enum carries a
// case-insensitive parser that fails with an unknown_enum_value error rather
// than storing unvetted text.

type Size string

const (
	SizeTiny   Size = "tiny"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeHuge   Size = "huge"
)

func ParseSize(s string) (Size, error) {
	switch Size(strings.ToLower(strings.TrimSpace(s))) {
	case SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge:
		return Size(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("size", s)
}

type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

func ParseAbility(s string) (Ability, error) {
	switch Ability(strings.ToLower(strings.TrimSpace(s))) {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return Ability(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("ability", s)
}

// AbilityBoost is the ability vocabulary plus the two free-boost variants
// that only appear on ancestry records.
type AbilityBoost string

const (
	BoostStrength     AbilityBoost = "strength"
	BoostDexterity    AbilityBoost = "dexterity"
	BoostConstitution AbilityBoost = "constitution"
	BoostIntelligence AbilityBoost = "intelligence"
	BoostWisdom       AbilityBoost = "wisdom"
	BoostCharisma     AbilityBoost = "charisma"
	BoostFree         AbilityBoost = "free"
	BoostTwoFree      AbilityBoost = "two free ability boosts"
)

func ParseAbilityBoost(s string) (AbilityBoost, error) {
	switch AbilityBoost(strings.ToLower(strings.TrimSpace(s))) {
	case BoostStrength, BoostDexterity, BoostConstitution, BoostIntelligence,
		BoostWisdom, BoostCharisma, BoostFree, BoostTwoFree:
		return AbilityBoost(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("ability boost", s)
}

type Vision string

const (
	VisionDarkvision Vision = "darkvision"
	VisionLowLight   Vision = "low-light vision"
)

func ParseVision(s string) (Vision, error) {
	switch Vision(strings.ToLower(strings.TrimSpace(s))) {
	case VisionDarkvision, VisionLowLight:
		return Vision(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("vision", s)
}

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityUnique   Rarity = "unique"
)

func ParseRarity(s string) (Rarity, error) {
	switch Rarity(strings.ToLower(strings.TrimSpace(s))) {
	case RarityCommon, RarityUncommon, RarityRare, RarityUnique:
		return Rarity(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("rarity", s)
}

type SpellcastingTradition string

const (
	TraditionArcane SpellcastingTradition = "arcane"
	TraditionDivine SpellcastingTradition = "divine"
	TraditionOccult SpellcastingTradition = "occult"
	TraditionPrimal SpellcastingTradition = "primal"
)

func ParseTradition(s string) (SpellcastingTradition, error) {
	switch SpellcastingTradition(strings.ToLower(strings.TrimSpace(s))) {
	case TraditionArcane, TraditionDivine, TraditionOccult, TraditionPrimal:
		return SpellcastingTradition(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("tradition", s)
}

type Proficiency string

const (
	ProficiencyUntrained Proficiency = "untrained"
	ProficiencyTrained   Proficiency = "trained"
	ProficiencyExpert    Proficiency = "expert"
	ProficiencyMaster    Proficiency = "master"
	ProficiencyLegendary Proficiency = "legendary"
)

func ParseProficiency(s string) (Proficiency, error) {
	switch Proficiency(strings.ToLower(strings.TrimSpace(s))) {
	case ProficiencyUntrained, ProficiencyTrained, ProficiencyExpert,
		ProficiencyMaster, ProficiencyLegendary:
		return Proficiency(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", apierr.UnknownEnumValue("proficiency", s)
}
