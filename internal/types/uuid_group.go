package types

// UUIDGroup binds one upstream uuid to a category. The upstream index does
// not say what each uuid represents beyond its member list; Label is filled
// in by hand (via the label route) once someone has looked at the group, and
// synchronization never touches it.
type UUIDGroup struct {
	ID         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       string  `gorm:"uniqueIndex;not null;column:uuid" json:"uuid"`
	CategoryID int64   `gorm:"not null;index;column:category_id" json:"category_id"`
	Label      *string `gorm:"column:label" json:"label"`
}

func (UUIDGroup) TableName() string {
	return "uuid_group"
}

// UUIDIndex is the upstream index shape: uuid -> ordered member compound
// identifiers, e.g. {"6ab...": ["ancestry-1", "ancestry-2"]}.
type UUIDIndex map[string][]string
