package domain

type Planet struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:80;not null;uniqueIndex"`
	Population string `json:"population" gorm:"size:50;not null"`
	Diameter   string `json:"diameter" gorm:"size:50;not null"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p Planet) EntityKind() EntityKind      { return KindPlanet }
func (p Planet) EntityID() int64             { return p.ID }
func (p Planet) UniqueKey() (string, string) { return "name", p.Name }
