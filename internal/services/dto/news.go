package dto

// CreateNewsRequest covers both the admin surface and the user-authored
// surface. Draft saves the article without submitting it for
// moderation; the admin surface may publish directly instead.
type CreateNewsRequest struct {
	Title          string   `json:"title" validate:"required,min=5,max=200"`
	Excerpt        string   `json:"excerpt" validate:"required,min=10,max=400"`
	Content        string   `json:"content" validate:"required,min=20"`
	FeaturedImage  string   `json:"featuredImage" validate:"omitempty,url"`
	Category       string   `json:"category" validate:"required,news-category"`
	Tags           []string `json:"tags" validate:"omitempty,dive,required,max=40"`
	Language       string   `json:"language" validate:"omitempty,news-language"`
	IsFeatured     bool     `json:"isFeatured"`
	SEOTitle       string   `json:"seoTitle" validate:"omitempty,max=70"`
	SEODescription string   `json:"seoDescription" validate:"omitempty,max=160"`
	Draft          bool     `json:"draft"`
}

type UpdateNewsRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=5,max=200"`
	Excerpt        *string  `json:"excerpt,omitempty" validate:"omitempty,min=10,max=400"`
	Content        *string  `json:"content,omitempty" validate:"omitempty,min=20"`
	FeaturedImage  *string  `json:"featuredImage,omitempty" validate:"omitempty,url"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,news-category"`
	Tags           []string `json:"tags,omitempty" validate:"omitempty,dive,required,max=40"`
	Language       *string  `json:"language,omitempty" validate:"omitempty,news-language"`
	IsFeatured     *bool    `json:"isFeatured,omitempty"`
	SEOTitle       *string  `json:"seoTitle,omitempty" validate:"omitempty,max=70"`
	SEODescription *string  `json:"seoDescription,omitempty" validate:"omitempty,max=160"`
}

type ListNewsQuery struct {
	Category string `form:"category" validate:"omitempty,news-category"`
	Language string `form:"language" validate:"omitempty,news-language"`
	Featured *bool  `form:"featured"`
	Search   string `form:"search"`
	// Status is honored only on the admin and own-author surfaces.
	Status string `form:"status" validate:"omitempty,oneof=draft pending published rejected"`
}

// NormalizeLanguage maps the short forms accepted on the user surface to
// the canonical stored values.
func NormalizeLanguage(lang string) string {
	switch lang {
	case "", "en":
		return "english"
	case "hi":
		return "hindi"
	default:
		return lang
	}
}
