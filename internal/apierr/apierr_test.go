package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handle request: %w", UnknownUUID("aaaa-1111"))
	if !Is(err, CodeUnknownUUID) {
		t.Fatal("wrapped code not found")
	}
	if Is(err, CodeUpstreamMissing) {
		t.Fatal("matched wrong code")
	}
	if Is(errors.New("plain"), CodeUnknownUUID) {
		t.Fatal("matched non-api error")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(UpstreamUnavailable(errors.New("timeout"))); got != http.StatusBadGateway {
		t.Fatalf("status=%d, want 502", got)
	}
	if got := StatusOf(UnknownUUID("x")); got != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", got)
	}
	// Codes without a bound status, and foreign errors, both fall back to 500.
	if got := StatusOf(StorageContention(errors.New("locked"))); got != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", got)
	}
	if got := StatusOf(errors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", got)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(MalformedIdentifier("ancestry-")); got != CodeMalformedIdentifier {
		t.Fatalf("code=%q", got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("code=%q, want empty", got)
	}
}

func TestErrorString(t *testing.T) {
	err := UnknownEnumValue("rarity", "mythic")
	want := `unknown_enum_value: unknown rarity value "mythic"`
	if err.Error() != want {
		t.Fatalf("Error()=%q, want %q", err.Error(), want)
	}
}
