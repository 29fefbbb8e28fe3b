package serializers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/types"
)

// Serializer turns one raw upstream item into a record for its category.
// Implementations are pure: no I/O, no clock reads (fetchedAt is injected so
// a whole batch shares one timestamp).
type Serializer interface {
	Category() string
	Parse(raw json.RawMessage, groupID int64, fetchedAt time.Time) (types.Record, error)
}

// Registry resolves a category name to its serializer, falling back to the
// generic one for categories without a typed model.
type Registry struct {
	byCategory map[string]Serializer
	fallback   Serializer
}

func NewRegistry() *Registry {
	r := &Registry{
		byCategory: map[string]Serializer{},
		fallback:   &genericSerializer{},
	}
	for _, s := range []Serializer{
		&ancestrySerializer{},
		&classSerializer{},
	} {
		r.byCategory[s.Category()] = s
	}
	return r
}

func (r *Registry) ForCategory(name string) Serializer {
	if s, ok := r.byCategory[name]; ok {
		return s
	}
	return r.fallback
}

// HasTyped reports whether the category has its own model (and therefore its
// own table) rather than the generic fallback.
func (r *Registry) HasTyped(name string) bool {
	_, ok := r.byCategory[name]
	return ok
}

// CategoryPrefix extracts the category from a compound identifier:
// "ancestry-1234" -> "ancestry". The empty identifier yields "".
func CategoryPrefix(id string) string {
	if i := strings.Index(id, "-"); i >= 0 {
		return id[:i]
	}
	return id
}

// NumericID extracts the numeric suffix of a compound identifier:
// "ancestry-1234" -> 1234. Typed records use it as their stable primary key.
func NumericID(id string) (int64, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 || i == len(id)-1 {
		return 0, apierr.MalformedIdentifier(id)
	}
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return 0, apierr.MalformedIdentifier(id)
	}
	return n, nil
}
