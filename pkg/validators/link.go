package validators

import "errors"

var (
	ErrTitleEmpty = errors.New("no title provided")
	ErrURLEmpty   = errors.New("no url provided")
)

// LinkValidator checks that both fields are present. Nothing beyond
// presence is validated, a bookmark is allowed to point anywhere
func LinkValidator(title, rawURL string) error {
	if title == "" {
		return ErrTitleEmpty
	}

	if rawURL == "" {
		return ErrURLEmpty
	}

	return nil
}
