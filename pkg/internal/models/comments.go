package models

type Comment struct {
	BaseModel

	Text     string `json:"text"`
	Language string `json:"language"`

	CreatorID uint    `json:"creator_id"`
	Creator   Account `json:"creator"`
	StepID    uint    `json:"step_id" gorm:"index"`
	Step      Step    `json:"step"`
}
