package types

import (
	"time"

	"gorm.io/datatypes"
)

// Item is the generic fallback for categories without a typed model. Unlike
// typed records, the primary key is database-assigned; the upstream compound
// identifier is kept as SourceID since its prefix is the only category
// information the payload carries.
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UUIDGroupID int64     `gorm:"not null;uniqueIndex:idx_item_group_source;column:uuid_group_id" json:"uuid_group_id"`
	LastFetched time.Time `gorm:"not null;column:last_fetched" json:"last_fetched"`

	SourceID     string         `gorm:"not null;uniqueIndex:idx_item_group_source;column:source_id" json:"source_id"`
	CategoryName string         `gorm:"not null;column:category_name" json:"category_name"`
	Data         datatypes.JSON `gorm:"column:data" json:"data"`
}

func (Item) TableName() string {
	return "item"
}

func (i *Item) RecordID() int64      { return i.ID }
func (i *Item) FetchedAt() time.Time { return i.LastFetched }
