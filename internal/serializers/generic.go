package serializers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/DaBenjle/aonapi/internal/types"
)

// genericSerializer wraps the whole upstream document opaquely for categories
// without a typed model. It only insists on the identifier and category
// fields every export document carries.
type genericSerializer struct{}

func (s *genericSerializer) Category() string { return "" }

func (s *genericSerializer) Parse(raw json.RawMessage, groupID int64, fetchedAt time.Time) (types.Record, error) {
	var envelope struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode generic payload: %w", err)
	}
	if envelope.ID == "" {
		return nil, fmt.Errorf("generic payload has no id field")
	}
	return &types.Item{
		UUIDGroupID:  groupID,
		LastFetched:  fetchedAt,
		SourceID:     envelope.ID,
		CategoryName: envelope.Category,
		Data:         datatypes.JSON(raw),
	}, nil
}
