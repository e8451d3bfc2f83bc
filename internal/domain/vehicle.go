package domain

type Vehicle struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:80;not null;uniqueIndex"`
	Model string `json:"model" gorm:"size:50;not null"`
	Size  string `json:"size" gorm:"size:50;not null"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v Vehicle) EntityKind() EntityKind      { return KindVehicle }
func (v Vehicle) EntityID() int64             { return v.ID }
func (v Vehicle) UniqueKey() (string, string) { return "name", v.Name }
