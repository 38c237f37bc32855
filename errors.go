package belanja

import "github.com/prasetyo/belanja/i18n"

// ValidationError reports an invalid item draft. The collection is left
// untouched when one is returned. Field names the first offending
// field; the user-facing message is the same for every field, as a
// correction hint rather than a diagnostic.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid item: bad " + e.Field
}

// Message returns the localized, user-facing message.
func (e *ValidationError) Message(lang i18n.Lang) string {
	return i18n.T(i18n.FormError, lang)
}
