package models

import (
	"strings"

	"gorm.io/gorm"
)

// Blogger represents a content creator the agency works with.
//
// Names are deliberately not unique: the same person can be listed
// twice after a bulk import. List screens de-duplicate at query time,
// see UniqueBloggers.
type Blogger struct {
	DefaultModel
	Name        string `json:"name"`
	Platform    string `json:"platform"` // One of tiktok, tg, insta, youtube
	Link        string `json:"link"`
	ContactLink string `json:"contactLink"`
	RknInfo     string `json:"rknInfo"`
	Telegram    string `json:"telegram"`
}

// BloggerPlatforms is the allowed platform vocabulary, enforced at the
// request boundary only.
var BloggerPlatforms = []string{"tiktok", "tg", "insta", "youtube"}

// BeforeSave trims whitespace and checks required fields.
func (b *Blogger) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrBloggerNameRequired
	}

	return nil
}

// UniqueBloggers removes later duplicates of the same name, compared
// case-insensitively. The input order is kept.
func UniqueBloggers(bloggers []Blogger) []Blogger {
	seen := make(map[string]bool, len(bloggers))
	unique := make([]Blogger, 0, len(bloggers))

	for _, blogger := range bloggers {
		key := strings.ToLower(strings.TrimSpace(blogger.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, blogger)
	}

	return unique
}
