package types

// Category is a kind of record ("ancestry", "class", "action", ...). Rows are
// created lazily the first time a category name shows up in the uuid index
// and are never deleted.
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (Category) TableName() string {
	return "category"
}
