package serializers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/DaBenjle/aonapi/internal/types"
)

// ancestryPayload is the subset of the upstream ancestry document we keep.
// Field shapes follow what the export actually emits, not what it ought to:
// hp arrives as a string in "hp_raw", speed as an object with a "max" key,
// the flaw as a one-element array.
type ancestryPayload struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	HPRaw            json.Number `json:"hp_raw"`
	Size             []string    `json:"size"`
	Speed            *struct {
		Max int `json:"max"`
	} `json:"speed"`
	Attribute        []string `json:"attribute"`
	AttributeFlaw    []string `json:"attribute_flaw"`
	LanguageMarkdown string   `json:"language_markdown"`
	Vision           string   `json:"vision"`
	Rarity           string   `json:"rarity"`
}

type ancestrySerializer struct{}

func (s *ancestrySerializer) Category() string { return "ancestry" }

func (s *ancestrySerializer) Parse(raw json.RawMessage, groupID int64, fetchedAt time.Time) (types.Record, error) {
	var payload ancestryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode ancestry payload: %w", err)
	}

	id, err := NumericID(payload.ID)
	if err != nil {
		return nil, err
	}

	var hp *int
	if payload.HPRaw != "" {
		parsed, err := payload.HPRaw.Int64()
		if err != nil {
			return nil, fmt.Errorf("ancestry %s: hp_raw %q: %w", payload.ID, payload.HPRaw, err)
		}
		v := int(parsed)
		hp = &v
	}

	speed := 0
	if payload.Speed != nil {
		speed = payload.Speed.Max
	}

	sizes := make([]types.Size, 0, len(payload.Size))
	for _, rawSize := range payload.Size {
		size, err := types.ParseSize(rawSize)
		if err != nil {
			return nil, fmt.Errorf("ancestry %s: %w", payload.ID, err)
		}
		sizes = append(sizes, size)
	}

	boosts := make([]types.AbilityBoost, 0, len(payload.Attribute))
	for _, rawBoost := range payload.Attribute {
		boost, err := NormalizeAbilityBoost(rawBoost)
		if err != nil {
			return nil, fmt.Errorf("ancestry %s: %w", payload.ID, err)
		}
		boosts = append(boosts, boost)
	}

	var flaw *types.Ability
	if len(payload.AttributeFlaw) > 0 && strings.TrimSpace(payload.AttributeFlaw[0]) != "" {
		parsed, err := NormalizeAbility(payload.AttributeFlaw[0])
		if err != nil {
			return nil, fmt.Errorf("ancestry %s: %w", payload.ID, err)
		}
		flaw = &parsed
	}

	var vision *types.Vision
	if strings.TrimSpace(payload.Vision) != "" {
		parsed, err := types.ParseVision(payload.Vision)
		if err != nil {
			return nil, fmt.Errorf("ancestry %s: %w", payload.ID, err)
		}
		vision = &parsed
	}

	rarity, err := types.ParseRarity(payload.Rarity)
	if err != nil {
		return nil, fmt.Errorf("ancestry %s: %w", payload.ID, err)
	}

	return &types.Ancestry{
		ID:           id,
		UUIDGroupID:  groupID,
		LastFetched:  fetchedAt,
		Name:         payload.Name,
		HP:           hp,
		Size:         datatypes.NewJSONSlice(sizes),
		Speed:        speed,
		AbilityBoost: datatypes.NewJSONSlice(boosts),
		AbilityFlaw:  flaw,
		Language:     datatypes.NewJSONSlice(ParseLanguages(payload.LanguageMarkdown)),
		Vision:       vision,
		Rarity:       rarity,
	}, nil
}
