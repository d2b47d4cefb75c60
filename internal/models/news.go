package models

import (
	"time"

	"gorm.io/datatypes"
)

// News is an article. The author is a tagged union: AuthorID together
// with AuthorKind says which credential store to resolve it against.
type News struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	Slug           string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt        string         `gorm:"type:text;not null" json:"excerpt"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	FeaturedImage  string         `json:"featuredImage,omitempty"`
	Category       string         `gorm:"type:varchar(40);not null;index" json:"category"`
	Tags           datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Language       string         `gorm:"type:varchar(10);not null;default:'english'" json:"language"`
	AuthorID       string         `gorm:"type:uuid;not null;index" json:"authorId"`
	AuthorKind     AuthorKind     `gorm:"type:varchar(10);not null" json:"authorKind"`
	Status         NewsStatus     `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	IsFeatured     bool           `gorm:"not null;default:false" json:"isFeatured"`
	Views          int64          `gorm:"not null;default:0" json:"views"`
	PublishedAt    *time.Time     `json:"publishedAt,omitempty"`
	SEOTitle       string         `json:"seoTitle,omitempty"`
	SEODescription string         `json:"seoDescription,omitempty"`

	ReviewedBy      string     `gorm:"type:uuid" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

func (News) TableName() string { return "news" }

// IsOwnedBy reports whether the given identity authored the article.
func (n *News) IsOwnedBy(id string, kind AuthorKind) bool {
	return n.AuthorID == id && n.AuthorKind == kind
}
