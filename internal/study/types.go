package study

// Mode selects which input variant a session is capturing.
type Mode int

const (
	ModeText Mode = iota
	ModeImage
)

func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	default:
		return "text"
	}
}

type contentKind int

const (
	kindNone contentKind = iota
	kindText
	kindImage
)

// PendingContent is the not-yet-submitted user input: either raw text or
// image bytes with a MIME type. Exactly one variant is active; the zero
// value carries nothing.
type PendingContent struct {
	kind     contentKind
	text     string
	data     []byte
	mimeType string
}

// TextContent builds the text variant.
func TextContent(s string) PendingContent {
	return PendingContent{kind: kindText, text: s}
}

// ImageContent builds the image variant.
func ImageContent(data []byte, mimeType string) PendingContent {
	return PendingContent{kind: kindImage, data: data, mimeType: mimeType}
}

// IsZero reports whether no content is present.
func (p PendingContent) IsZero() bool { return p.kind == kindNone }

// IsText reports whether the text variant is active.
func (p PendingContent) IsText() bool { return p.kind == kindText }

// IsImage reports whether the image variant is active.
func (p PendingContent) IsImage() bool { return p.kind == kindImage }

// Text returns the text payload. Empty unless IsText.
func (p PendingContent) Text() string { return p.text }

// Image returns the image payload and MIME type. Empty unless IsImage.
func (p PendingContent) Image() ([]byte, string) { return p.data, p.mimeType }

// KeyTerm is one glossary entry of an analysis.
type KeyTerm struct {
	Term       string
	Definition string
}

// Question is one multiple-choice quiz question. Answer is the letter of
// the correct option ("A" for the first option), taken verbatim from the
// service response.
type Question struct {
	Question string
	Options  []string
	Answer   string
}

// AnalysisResult is the validated structured output of one analysis:
// a summary, a glossary, a quiz, and a closing note. Immutable once
// produced; a retry replaces it wholesale.
type AnalysisResult struct {
	Summary       string
	KeyTerms      []KeyTerm
	Questions     []Question
	Encouragement string
}
