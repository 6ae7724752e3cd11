// Package report builds the language-neutral document models emitted for
// the monthly report, semester report, termination statement, attendance
// sheet, and activity-log export. A document is an ordered list of typed
// blocks; the PDF renderer in the pdf subpackage turns blocks into bytes.
// Assembly is deterministic given identical inputs and clock readings.
package report

// Document is an ordered sequence of blocks plus the delivery filename.
type Document struct {
	Filename string
	Blocks   []Block
}

// Block is one typed element of a document.
type Block interface {
	isBlock()
}

// Header is the centered heading lines that open a document.
type Header struct {
	Lines []string
}

// TitleTable is a two-column label/value table.
type TitleTable struct {
	Rows [][2]string
}

// BodySection is a heading followed by body paragraphs.
type BodySection struct {
	Heading    string
	Paragraphs []string
}

// BodyTable is a sequence of headed sections.
type BodyTable struct {
	Sections []BodySection
}

// ParagraphStyle selects the rendering treatment of a paragraph.
type ParagraphStyle string

const (
	// StyleBody is justified running text.
	StyleBody ParagraphStyle = "body"
	// StyleNote is small muted text.
	StyleNote ParagraphStyle = "note"
)

// Paragraph is a free-standing block of text.
type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

// SignatureBlock renders one signature rule per label.
type SignatureBlock struct {
	Labels []string
}

func (Header) isBlock()         {}
func (TitleTable) isBlock()     {}
func (BodyTable) isBlock()      {}
func (Paragraph) isBlock()      {}
func (SignatureBlock) isBlock() {}
