package domain

type Character struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:80;not null;uniqueIndex"`
	Gender   string `json:"gender" gorm:"size:50;not null"`
	EyeColor string `json:"eye_color" gorm:"size:50;not null"`
}

func (Character) TableName() string {
	return "characters"
}

func (c Character) EntityKind() EntityKind      { return KindCharacter }
func (c Character) EntityID() int64             { return c.ID }
func (c Character) UniqueKey() (string, string) { return "name", c.Name }
