package types

import "fmt"

// ContentKind names the source a Content value is read from.
type ContentKind string

const (
	ContentRaw  ContentKind = "raw"
	ContentFile ContentKind = "file"
	// ContentURL is part of the document format but has no reader.
	ContentURL ContentKind = "url"
)

// ContentKinds lists the accepted kinds in document order.
var ContentKinds = []ContentKind{ContentRaw, ContentFile, ContentURL}

// Content describes where the bytes of a command, file or rc snippet come from.
// For ContentFile, Value is a path relative to the declaring config's directory.
type Content struct {
	Kind  ContentKind
	Value string
}

// RawContent returns literal content.
func RawContent(text string) Content {
	return Content{Kind: ContentRaw, Value: text}
}

// FileContent returns content read from a file next to the config.
func FileContent(path string) Content {
	return Content{Kind: ContentFile, Value: path}
}

// URLContent returns content to be fetched from a URL.
func URLContent(url string) Content {
	return Content{Kind: ContentURL, Value: url}
}

func (c Content) String() string {
	return fmt.Sprintf("%s:%q", c.Kind, c.Value)
}

// ContentOrString is a Content that may have been declared as a plain string.
// The shorthand behaves exactly like raw content; Shorthand only records the
// declared form so documents re-encode the way they were written.
type ContentOrString struct {
	Content
	Shorthand bool
}

// StringContent returns the plain-string shorthand for raw content.
func StringContent(text string) ContentOrString {
	return ContentOrString{Content: RawContent(text), Shorthand: true}
}

// ObjectContent wraps an explicit content object.
func ObjectContent(c Content) ContentOrString {
	return ContentOrString{Content: c}
}
