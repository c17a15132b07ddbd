package app

import "regexp"

// GitHub account names: alphanumeric runs separated by single hyphens,
// so no leading, trailing or doubled hyphen. Length is checked separately.
var validNameRe = regexp.MustCompile(`^[a-zA-Z\d]+(?:-[a-zA-Z\d]+)*$`)

const maxNameLength = 39

// Reserved path segments on github.com that are never account names.
var reservedNames = map[string]bool{
	"help":    true,
	"about":   true,
	"pricing": true,
}

// ValidateName checks that name is a syntactically valid GitHub org or user name.
func ValidateName(name string) error {
	if name == "" {
		return InvalidRequestError("name cannot be empty")
	}
	if reservedNames[name] {
		return InvalidRequestError("name '" + name + "' is a reserved GitHub name")
	}
	if len(name) > maxNameLength || !validNameRe.MatchString(name) {
		return InvalidRequestError(
			"name may contain only alphanumeric characters and single hyphens, " +
				"cannot start or end with a hyphen and cannot be longer than 39 characters",
		)
	}

	return nil
}
