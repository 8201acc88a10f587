package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("a@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("hunter22hunter22"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong)
}

func TestLinkValidator(t *testing.T) {
	assert.NoError(t, LinkValidator("Example", "https://example.com"))
	assert.NoError(t, LinkValidator("Example", "http://example.com/path?q=1"))

	assert.ErrorIs(t, LinkValidator("", "https://example.com"), ErrTitleEmpty)
	assert.ErrorIs(t, LinkValidator("Example", ""), ErrURLEmpty)
}
