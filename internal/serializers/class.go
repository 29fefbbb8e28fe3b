package serializers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/DaBenjle/aonapi/internal/types"
)

type classPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Ability   []string `json:"ability"`
	HP        int      `json:"hp"`
	Tradition string   `json:"tradition"`

	AttackProficiency  map[string]string `json:"attack_proficiency"`
	DefenseProficiency map[string]string `json:"defense_proficiency"`
	SkillProficiency   map[string]string `json:"skill_proficiency"`

	FortitudeSaveProficiency string `json:"fortitude_save_proficiency"`
	ReflexSaveProficiency    string `json:"reflex_save_proficiency"`
	WillSaveProficiency      string `json:"will_save_proficiency"`
	PerceptionProficiency    string `json:"perception_proficiency"`

	Rarity string `json:"rarity"`
}

type classSerializer struct{}

func (s *classSerializer) Category() string { return "class" }

func (s *classSerializer) Parse(raw json.RawMessage, groupID int64, fetchedAt time.Time) (types.Record, error) {
	var payload classPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode class payload: %w", err)
	}

	id, err := NumericID(payload.ID)
	if err != nil {
		return nil, err
	}

	abilities := make([]types.Ability, 0, len(payload.Ability))
	for _, rawAbility := range payload.Ability {
		ability, err := NormalizeAbility(rawAbility)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", payload.ID, err)
		}
		abilities = append(abilities, ability)
	}

	var tradition *types.SpellcastingTradition
	if strings.TrimSpace(payload.Tradition) != "" {
		parsed, err := types.ParseTradition(payload.Tradition)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", payload.ID, err)
		}
		tradition = &parsed
	}

	attack, err := parseProficiencyMap(payload.AttackProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s attack proficiency: %w", payload.ID, err)
	}
	defense, err := parseProficiencyMap(payload.DefenseProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s defense proficiency: %w", payload.ID, err)
	}
	skill, err := parseProficiencyMap(payload.SkillProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s skill proficiency: %w", payload.ID, err)
	}

	fortitude, err := parseProficiencyOrUntrained(payload.FortitudeSaveProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", payload.ID, err)
	}
	reflex, err := parseProficiencyOrUntrained(payload.ReflexSaveProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", payload.ID, err)
	}
	will, err := parseProficiencyOrUntrained(payload.WillSaveProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", payload.ID, err)
	}
	perception, err := parseProficiencyOrUntrained(payload.PerceptionProficiency)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", payload.ID, err)
	}

	rarity, err := types.ParseRarity(payload.Rarity)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", payload.ID, err)
	}

	return &types.Class{
		ID:          id,
		UUIDGroupID: groupID,
		LastFetched: fetchedAt,
		Name:        payload.Name,
		Ability:     datatypes.NewJSONSlice(abilities),
		HP:          payload.HP,
		Tradition:   tradition,

		AttackProficiency:  datatypes.NewJSONType(attack),
		DefenseProficiency: datatypes.NewJSONType(defense),
		SkillProficiency:   datatypes.NewJSONType(skill),

		FortitudeSaveProficiency: fortitude,
		ReflexSaveProficiency:    reflex,
		WillSaveProficiency:      will,
		PerceptionProficiency:    perception,

		Rarity: rarity,
	}, nil
}

func parseProficiencyMap(raw map[string]string) (map[string]types.Proficiency, error) {
	out := make(map[string]types.Proficiency, len(raw))
	for key, value := range raw {
		proficiency, err := types.ParseProficiency(value)
		if err != nil {
			return nil, err
		}
		out[key] = proficiency
	}
	return out, nil
}

// Some class documents omit save proficiencies entirely; everything starts
// untrained in the game rules, so absence means untrained.
func parseProficiencyOrUntrained(raw string) (types.Proficiency, error) {
	if strings.TrimSpace(raw) == "" {
		return types.ProficiencyUntrained, nil
	}
	return types.ParseProficiency(raw)
}
