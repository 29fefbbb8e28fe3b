package types

import (
	"time"

	"gorm.io/datatypes"
)

// Class is the typed model for the 'class' category. Same keying scheme as
// Ancestry: the upstream numeric suffix is the primary key.
type Class struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UUIDGroupID int64     `gorm:"not null;index;column:uuid_group_id" json:"uuid_group_id"`
	LastFetched time.Time `gorm:"not null;column:last_fetched" json:"last_fetched"`

	Name      string                       `gorm:"not null;column:name" json:"name"`
	Ability   datatypes.JSONSlice[Ability] `gorm:"column:ability" json:"ability"`
	HP        int                          `gorm:"column:hp" json:"hp"`
	Tradition *SpellcastingTradition       `gorm:"column:tradition" json:"tradition"`

	// Proficiency maps keep their upstream keys (weapon groups, armor
	// classes, skill names); only the proficiency values are a closed
	// vocabulary.
	AttackProficiency  datatypes.JSONType[map[string]Proficiency] `gorm:"column:attack_proficiency" json:"attack_proficiency"`
	DefenseProficiency datatypes.JSONType[map[string]Proficiency] `gorm:"column:defense_proficiency" json:"defense_proficiency"`
	SkillProficiency   datatypes.JSONType[map[string]Proficiency] `gorm:"column:skill_proficiency" json:"skill_proficiency"`

	FortitudeSaveProficiency Proficiency `gorm:"column:fortitude_save_proficiency" json:"fortitude_save_proficiency"`
	ReflexSaveProficiency    Proficiency `gorm:"column:reflex_save_proficiency" json:"reflex_save_proficiency"`
	WillSaveProficiency      Proficiency `gorm:"column:will_save_proficiency" json:"will_save_proficiency"`
	PerceptionProficiency    Proficiency `gorm:"column:perception_proficiency" json:"perception_proficiency"`

	Rarity Rarity `gorm:"not null;column:rarity" json:"rarity"`
}

func (Class) TableName() string {
	return "class"
}

func (c *Class) RecordID() int64      { return c.ID }
func (c *Class) FetchedAt() time.Time { return c.LastFetched }
