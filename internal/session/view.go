package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NewView derives the display view of s, falling back to "User" / "U".
func NewView(s Session) View {
	title := DefaultTitle
	if s.Name != "" {
		title = s.Name
	}

	name := s.Name
	if name == "" {
		name = DefaultName
	}

	initial := DefaultInitial
	if r, size := utf8.DecodeRuneInString(strings.TrimSpace(name)); size > 0 && r != utf8.RuneError {
		initial = string(unicode.ToUpper(r))
	}

	return View{Name: name, Email: s.Email, Initial: initial, Title: title}
}
