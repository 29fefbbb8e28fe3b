package types

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"small", SizeSmall, false},
		{"Medium", SizeMedium, false},
		{"  LARGE  ", SizeLarge, false},
		{"huge", SizeHuge, false},
		{"colossal", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSize(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSize(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSize(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseVision(t *testing.T) {
	cases := []struct {
		in      string
		want    Vision
		wantErr bool
	}{
		{"Darkvision", VisionDarkvision, false},
		{"low-light vision", VisionLowLight, false},
		{"LOW-LIGHT VISION", VisionLowLight, false},
		{"x-ray vision", "", true},
	}
	for _, tc := range cases {
		got, err := ParseVision(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseVision(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVision(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVision(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRarity(t *testing.T) {
	for _, valid := range []string{"common", "Uncommon", "RARE", " unique "} {
		if _, err := ParseRarity(valid); err != nil {
			t.Errorf("ParseRarity(%q): %v", valid, err)
		}
	}
	if _, err := ParseRarity("mythic"); err == nil {
		t.Error("ParseRarity accepted unknown value")
	}
}

func TestParseAbilityBoost(t *testing.T) {
	cases := []struct {
		in   string
		want AbilityBoost
	}{
		{"strength", BoostStrength},
		{"free", BoostFree},
		{"two free ability boosts", BoostTwoFree},
	}
	for _, tc := range cases {
		got, err := ParseAbilityBoost(tc.in)
		if err != nil {
			t.Errorf("ParseAbilityBoost(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAbilityBoost(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ParseAbilityBoost("luck"); err == nil {
		t.Error("ParseAbilityBoost accepted unknown value")
	}
}

func TestParseProficiency(t *testing.T) {
	for _, valid := range []string{"untrained", "trained", "expert", "master", "legendary"} {
		if _, err := ParseProficiency(valid); err != nil {
			t.Errorf("ParseProficiency(%q): %v", valid, err)
		}
	}
	if _, err := ParseProficiency("grandmaster"); err == nil {
		t.Error("ParseProficiency accepted unknown value")
	}
}

func TestParseTradition(t *testing.T) {
	for _, valid := range []string{"arcane", "divine", "occult", "primal"} {
		if _, err := ParseTradition(valid); err != nil {
			t.Errorf("ParseTradition(%q): %v", valid, err)
		}
	}
	if _, err := ParseTradition("psychic"); err == nil {
		t.Error("ParseTradition accepted unknown value")
	}
}
