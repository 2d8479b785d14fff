package notion

import "strings"

// User identifies an actor (page owner, editor, assignee, mention target).
type User struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id"`
}

// TextContent is the payload of a plain text run.
type TextContent struct {
	Content string `json:"content"`
}

// Mention references a user inline in rich text.
type Mention struct {
	Type string `json:"type"`
	User *User  `json:"user,omitempty"`
}

// Annotations carries text styling flags.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// RichText is one run of a rich-text sequence: either a text run or a
// user mention.
type RichText struct {
	Type        string       `json:"type,omitempty"`
	Text        *TextContent `json:"text,omitempty"`
	Mention     *Mention     `json:"mention,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
}

// TextRun builds a plain text run.
func TextRun(content string) RichText {
	return RichText{Text: &TextContent{Content: content}}
}

// MentionRun builds a user-mention run.
func MentionRun(userID string) RichText {
	return RichText{
		Mention: &Mention{
			Type: "user",
			User: &User{Object: "user", ID: userID},
		},
	}
}

// StatusValue is the value of a status property.
type StatusValue struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// RelationRef is a by-ID reference to another page.
type RelationRef struct {
	ID string `json:"id"`
}

// DateRange is a date property value with an optional end bound.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Property is the discriminated union over page property kinds. Exactly
// one value field is populated, per the Type tag. Unknown kinds decode
// with only the Type tag set, which readers must treat as absent rather
// than defaulting.
type Property struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Status   *StatusValue  `json:"status,omitempty"`
	People   []User        `json:"people,omitempty"`
	Relation []RelationRef `json:"relation,omitempty"`
	Date     *DateRange    `json:"date,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
}

// SchemaProperty is a database schema patch entry. An empty Checkbox
// object declares a checkbox column.
type SchemaProperty struct {
	Checkbox *struct{} `json:"checkbox,omitempty"`
}

// Page is one raw page record as returned by the document service.
type Page struct {
	Object         string              `json:"object,omitempty"`
	ID             string              `json:"id"`
	CreatedBy      *User               `json:"created_by,omitempty"`
	LastEditedBy   *User               `json:"last_edited_by,omitempty"`
	LastEditedTime string              `json:"last_edited_time,omitempty"`
	Properties     map[string]Property `json:"properties,omitempty"`
}

// BlockText is the rich-text payload of a text-bearing block.
type BlockText struct {
	RichText []RichText `json:"rich_text"`
}

// Block is one ordered element of a page's content body.
type Block struct {
	Object           string     `json:"object,omitempty"`
	ID               string     `json:"id,omitempty"`
	Type             string     `json:"type"`
	Paragraph        *BlockText `json:"paragraph,omitempty"`
	Heading1         *BlockText `json:"heading_1,omitempty"`
	Heading2         *BlockText `json:"heading_2,omitempty"`
	Heading3         *BlockText `json:"heading_3,omitempty"`
	BulletedListItem *BlockText `json:"bulleted_list_item,omitempty"`
	NumberedListItem *BlockText `json:"numbered_list_item,omitempty"`
}

// Text returns the rich-text payload for recognized text-bearing block
// types, or nil for anything else (images, dividers, tables, ...).
func (b *Block) Text() *BlockText {
	switch b.Type {
	case "paragraph":
		return b.Paragraph
	case "heading_1":
		return b.Heading1
	case "heading_2":
		return b.Heading2
	case "heading_3":
		return b.Heading3
	case "bulleted_list_item":
		return b.BulletedListItem
	case "numbered_list_item":
		return b.NumberedListItem
	default:
		return nil
	}
}

// IsTextBearing reports whether the block type carries rich text.
func (b *Block) IsTextBearing() bool {
	switch b.Type {
	case "paragraph", "heading_1", "heading_2", "heading_3",
		"bulleted_list_item", "numbered_list_item":
		return true
	default:
		return false
	}
}

// NewParagraph builds a paragraph block with a single text run.
func NewParagraph(content string) Block {
	return Block{
		Object: "block",
		Type:   "paragraph",
		Paragraph: &BlockText{
			RichText: []RichText{{Type: "text", Text: &TextContent{Content: content}}},
		},
	}
}

// NormalizeID strips hyphens from an identifier. Normalized IDs are the
// join key for all subsequent calls against a page or user.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
