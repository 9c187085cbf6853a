// Package validators holds the purely local input checks that run before
// any network request is made, plus the markup-to-plaintext helper they
// share with the list renderer.
package validators

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrValidation is the root of all local input failures. Operations
// rejected with it have issued zero network requests.
var ErrValidation = errors.New("validation error")

var (
	ErrEmptyTitle   = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrEmptyContent = fmt.Errorf("%w: content must not be empty", ErrValidation)
)

// stripPolicy removes every markup tag, leaving only text nodes.
var stripPolicy = bluemonday.StrictPolicy()

// PlainText strips markup tags from the editor's output, unescapes HTML
// entities, and collapses runs of whitespace. Used both for snippet
// rendering and for detecting placeholder-empty content.
func PlainText(markup string) string {
	text := stripPolicy.Sanitize(markup)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// ValidateEntryInput checks the plaintext title and markup content before
// encryption. A title of only whitespace is empty; content whose stripped
// text is empty (e.g. the editor placeholder "<p><br></p>") counts as empty
// too.
func ValidateEntryInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if PlainText(content) == "" {
		return ErrEmptyContent
	}
	return nil
}
