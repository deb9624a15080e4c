package models

// ResearchProject represents the research_projects table
type ResearchProject struct {
	ID          uint    `gorm:"primaryKey;column:id" json:"id"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	PIID        uint    `gorm:"column:pi_id;not null;index" json:"pi_id"`
	ManagerID   uint    `gorm:"column:manager_id;not null;index" json:"manager_id"`

	PI      *User `gorm:"foreignKey:PIID;references:ID" json:"-"`
	Manager *User `gorm:"foreignKey:ManagerID;references:ID" json:"-"`
}

// TableName overrides the table name for ResearchProject
func (ResearchProject) TableName() string {
	return "research_projects"
}
