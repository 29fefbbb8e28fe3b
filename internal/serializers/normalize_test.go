package serializers

import (
	"reflect"
	"testing"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/types"
)

func TestParseLanguages(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "two_languages_with_prose",
			raw:  "[Common] spoken everywhere, [Draconic] the tongue of dragons",
			want: []string{"Common", "Draconic"},
		},
		{
			name: "single_language",
			raw:  "[Common] spoken everywhere",
			want: []string{"Common"},
		},
		{
			name: "empty",
			raw:  "",
			want: []string{},
		},
		{
			name: "prose_with_commas_between_entries",
			raw:  "[Common] spoken in cities, towns, and villages, [Draconic] rare",
			want: []string{"Common", "Draconic"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLanguages(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseLanguages(%q)=%v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeAbilityMisspellings(t *testing.T) {
	cases := []struct {
		in   string
		want types.Ability
	}{
		{"strengh", types.AbilityStrength},
		{"strenght", types.AbilityStrength},
		{"inteligence", types.AbilityIntelligence},
		{"widsom", types.AbilityWisdom},
		{"charimsa", types.AbilityCharisma},
		{"consitution", types.AbilityConstitution},
		{"dexteirty", types.AbilityDexterity},
		{"Strength", types.AbilityStrength},
	}

	for _, tc := range cases {
		got, err := NormalizeAbility(tc.in)
		if err != nil {
			t.Fatalf("NormalizeAbility(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeAbility(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeAbilityUnknown(t *testing.T) {
	_, err := NormalizeAbility("luckiness")
	if !apierr.Is(err, apierr.CodeUnknownEnumValue) {
		t.Fatalf("expected unknown_enum_value, got %v", err)
	}
}

func TestNormalizeAbilityBoostFreeForms(t *testing.T) {
	cases := []struct {
		in   string
		want types.AbilityBoost
	}{
		{"free", types.BoostFree},
		{"two_free", types.BoostTwoFree},
		{"two free", types.BoostTwoFree},
		{"2 free", types.BoostTwoFree},
		{"two free ability boosts", types.BoostTwoFree},
		{"strengh", types.AbilityBoost(types.AbilityStrength)},
	}

	for _, tc := range cases {
		got, err := NormalizeAbilityBoost(tc.in)
		if err != nil {
			t.Fatalf("NormalizeAbilityBoost(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeAbilityBoost(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNumericID(t *testing.T) {
	got, err := NumericID("ancestry-1234")
	if err != nil {
		t.Fatalf("NumericID: %v", err)
	}
	if got != 1234 {
		t.Fatalf("NumericID=%d, want 1234", got)
	}

	for _, bad := range []string{"", "ancestry", "ancestry-", "ancestry-abc"} {
		if _, err := NumericID(bad); !apierr.Is(err, apierr.CodeMalformedIdentifier) {
			t.Fatalf("NumericID(%q): expected malformed_identifier, got %v", bad, err)
		}
	}
}

func TestCategoryPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ancestry-1234", "ancestry"},
		{"class-1", "class"},
		{"noseparator", "noseparator"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CategoryPrefix(tc.in); got != tc.want {
			t.Fatalf("CategoryPrefix(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
