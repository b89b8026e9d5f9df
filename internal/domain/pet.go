package domain

type Pet struct {
	ID          string `json:"id" gorm:"type:varchar(64);primaryKey"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Breed       string `json:"breed" gorm:"type:text;not null"`
	Age         int    `json:"age" gorm:"not null"`
	Behavior    string `json:"behavior" gorm:"type:text;not null"`
	Available   bool   `json:"available" gorm:"not null;default:true"`
	ImageURL    string `json:"imageUrl" gorm:"column:image_url;type:text;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
}
