package serializers

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/types"
)

func TestAncestryParse(t *testing.T) {
	payload := json.RawMessage(`{
		"id": "ancestry-52",
		"name": "Kobold",
		"hp_raw": "6",
		"size": ["Small"],
		"speed": {"max": 25},
		"attribute": ["Dexterity", "strengh", "Free"],
		"attribute_flaw": ["Constition"],
		"language_markdown": "[Common] widely spoken, [Draconic] kobold heritage",
		"vision": "Darkvision",
		"rarity": "Common"
	}`)

	fetchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record, err := (&ancestrySerializer{}).Parse(payload, 7, fetchedAt)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ancestry, ok := record.(*types.Ancestry)
	if !ok {
		t.Fatalf("Parse returned %T, want *types.Ancestry", record)
	}

	if ancestry.ID != 52 {
		t.Fatalf("ID=%d, want 52", ancestry.ID)
	}
	if ancestry.UUIDGroupID != 7 {
		t.Fatalf("UUIDGroupID=%d, want 7", ancestry.UUIDGroupID)
	}
	if !ancestry.LastFetched.Equal(fetchedAt) {
		t.Fatalf("LastFetched=%v, want %v", ancestry.LastFetched, fetchedAt)
	}
	if ancestry.Name != "Kobold" {
		t.Fatalf("Name=%q", ancestry.Name)
	}
	if ancestry.HP == nil || *ancestry.HP != 6 {
		t.Fatalf("HP=%v, want 6", ancestry.HP)
	}
	if ancestry.Speed != 25 {
		t.Fatalf("Speed=%d, want 25", ancestry.Speed)
	}
	if !reflect.DeepEqual([]types.Size(ancestry.Size), []types.Size{types.SizeSmall}) {
		t.Fatalf("Size=%v", ancestry.Size)
	}
	wantBoosts := []types.AbilityBoost{types.BoostDexterity, types.BoostStrength, types.BoostFree}
	if !reflect.DeepEqual([]types.AbilityBoost(ancestry.AbilityBoost), wantBoosts) {
		t.Fatalf("AbilityBoost=%v, want %v", ancestry.AbilityBoost, wantBoosts)
	}
	if ancestry.AbilityFlaw == nil || *ancestry.AbilityFlaw != types.AbilityConstitution {
		t.Fatalf("AbilityFlaw=%v, want constitution", ancestry.AbilityFlaw)
	}
	if !reflect.DeepEqual([]string(ancestry.Language), []string{"Common", "Draconic"}) {
		t.Fatalf("Language=%v", ancestry.Language)
	}
	if ancestry.Vision == nil || *ancestry.Vision != types.VisionDarkvision {
		t.Fatalf("Vision=%v", ancestry.Vision)
	}
	if ancestry.Rarity != types.RarityCommon {
		t.Fatalf("Rarity=%q", ancestry.Rarity)
	}
}

func TestAncestryParseOptionalFieldsAbsent(t *testing.T) {
	payload := json.RawMessage(`{
		"id": "ancestry-1",
		"name": "Human",
		"attribute": ["two free ability boosts"],
		"rarity": "common"
	}`)

	record, err := (&ancestrySerializer{}).Parse(payload, 1, time.Now())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ancestry := record.(*types.Ancestry)
	if ancestry.HP != nil {
		t.Fatalf("HP=%v, want nil", ancestry.HP)
	}
	if ancestry.Speed != 0 {
		t.Fatalf("Speed=%d, want 0", ancestry.Speed)
	}
	if ancestry.AbilityFlaw != nil {
		t.Fatalf("AbilityFlaw=%v, want nil", ancestry.AbilityFlaw)
	}
	if ancestry.Vision != nil {
		t.Fatalf("Vision=%v, want nil", ancestry.Vision)
	}
	if len(ancestry.Language) != 0 {
		t.Fatalf("Language=%v, want empty", ancestry.Language)
	}
}

func TestAncestryParseMalformedID(t *testing.T) {
	payload := json.RawMessage(`{"id": "ancestry-abc", "name": "Broken", "rarity": "common"}`)
	if _, err := (&ancestrySerializer{}).Parse(payload, 1, time.Now()); !apierr.Is(err, apierr.CodeMalformedIdentifier) {
		t.Fatalf("expected malformed_identifier, got %v", err)
	}
}

func TestAncestryParseUnknownEnum(t *testing.T) {
	payload := json.RawMessage(`{"id": "ancestry-2", "name": "Odd", "rarity": "mythical"}`)
	if _, err := (&ancestrySerializer{}).Parse(payload, 1, time.Now()); !apierr.Is(err, apierr.CodeUnknownEnumValue) {
		t.Fatalf("expected unknown_enum_value, got %v", err)
	}
}
