package extract

import "fmt"

// UnreadableDocumentError indicates the uploaded container could not be parsed.
type UnreadableDocumentError struct {
	Path  string
	Cause error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable document %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("unreadable document %s", e.Path)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates the document parsed but contained no text.
type EmptyDocumentError struct {
	Path string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no text content found in document %s", e.Path)
}
