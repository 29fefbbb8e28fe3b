package types

import (
	"time"

	"gorm.io/datatypes"
)

// Ancestry is the typed model for the 'ancestry' category. The primary key is
// the numeric suffix of the upstream compound identifier ("ancestry-1234" ->
// 1234), so refetching the same group upserts instead of appending.
type Ancestry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UUIDGroupID int64     `gorm:"not null;index;column:uuid_group_id" json:"uuid_group_id"`
	LastFetched time.Time `gorm:"not null;column:last_fetched" json:"last_fetched"`

	Name         string                            `gorm:"not null;column:name" json:"name"`
	HP           *int                              `gorm:"column:hp" json:"hp"`
	Size         datatypes.JSONSlice[Size]         `gorm:"column:size" json:"size"`
	Speed        int                               `gorm:"column:speed" json:"speed"`
	AbilityBoost datatypes.JSONSlice[AbilityBoost] `gorm:"column:ability_boost" json:"ability_boost"`
	AbilityFlaw  *Ability                          `gorm:"column:ability_flaw" json:"ability_flaw"`
	Language     datatypes.JSONSlice[string]       `gorm:"column:language" json:"language"`
	Vision       *Vision                           `gorm:"column:vision" json:"vision"`
	Rarity       Rarity                            `gorm:"not null;column:rarity" json:"rarity"`
}

func (Ancestry) TableName() string {
	return "ancestry"
}

func (a *Ancestry) RecordID() int64      { return a.ID }
func (a *Ancestry) FetchedAt() time.Time { return a.LastFetched }
