package utils

// IsLowerAlpha reports whether s is non-empty and made only of 'a'..'z'
func IsLowerAlpha(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// IsValidInput checks if a prefix should be looked up at all.
// The vocabulary only holds lowercase letters, so numbers, symbols and
// separators can never match anything.
func IsValidInput(s string) bool {
	return IsLowerAlpha(s)
}
