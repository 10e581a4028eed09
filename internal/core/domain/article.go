package domain

// PreviewLength is the number of content characters kept in an article preview.
const PreviewLength = 25

const previewSuffix = "..."

// Article is a published piece of content. It is immutable once stored.
type Article struct {
	ID            int64  `json:"id" bson:"_id"`
	Author        string `json:"author" bson:"author"`
	Title         string `json:"title" bson:"title"`
	Content       string `json:"content" bson:"content"`
	Preview       string `json:"preview" bson:"preview"`
	MinutesToRead int    `json:"minutes_to_read" bson:"minutes_to_read"`
	IsMemberOnly  bool   `json:"is_member_only" bson:"is_member_only"`
}

// NewArticle builds an unsaved article and derives its preview from content.
func NewArticle(author, title, content string, minutesToRead int, memberOnly bool) *Article {
	return &Article{
		Author:        author,
		Title:         title,
		Content:       content,
		Preview:       BuildPreview(content),
		MinutesToRead: minutesToRead,
		IsMemberOnly:  memberOnly,
	}
}

// BuildPreview returns the first PreviewLength characters of content followed by "...".
// Content shorter than PreviewLength is used whole.
func BuildPreview(content string) string {
	runes := []rune(content)
	if len(runes) > PreviewLength {
		runes = runes[:PreviewLength]
	}
	return string(runes) + previewSuffix
}
