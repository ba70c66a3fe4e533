package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Polish mobile numbers, optionally prefixed with +48 / 48, digits in
// groups of three with optional spaces.
var phonePattern = regexp.MustCompile(`^(\+?48)? ?\d{3} ?\d{3} ?\d{3}$`)

func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func validEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// ValidateRegister checks a registration payload.
func ValidateRegister(fields Fields) Result {
	errors := map[string]string{}

	firstName := fields["firstName"]
	if _, ok := asString(firstName); !ok {
		errors["firstName"] = "First name must be a string"
	} else if s, _ := asString(firstName); !lengthBetween(s, 2, 15) {
		errors["firstName"] = "First name must be between 2 and 15 characters"
	}
	if isEmpty(firstName) {
		errors["firstName"] = "First name field is required"
	}

	lastName := fields["lastName"]
	if _, ok := asString(lastName); !ok {
		errors["lastName"] = "Last name must be a string"
	} else if s, _ := asString(lastName); !lengthBetween(s, 2, 20) {
		errors["lastName"] = "Last name must be between 2 and 20 characters"
	}
	if isEmpty(lastName) {
		errors["lastName"] = "Last name field is required"
	}

	email := fields["email"]
	if _, ok := asString(email); !ok {
		errors["email"] = "Email must be a string"
	} else if s, _ := asString(email); !validEmail(s) {
		errors["email"] = "Email is invalid"
	}
	if isEmpty(email) {
		errors["email"] = "Email field is required"
	}

	password := fields["password"]
	if _, ok := asString(password); !ok {
		errors["password"] = "Password must be a string"
	} else if s, _ := asString(password); !lengthBetween(s, 4, 32) {
		errors["password"] = "Password must be between 4 and 32 characters"
	}
	if isEmpty(password) {
		errors["password"] = "Password field is required"
	}

	confirmation := fields["passwordConfirmation"]
	if _, ok := asString(confirmation); !ok {
		errors["passwordConfirmation"] = "Password confirmation must be a string"
	}
	if isEmpty(confirmation) {
		errors["passwordConfirmation"] = "Password confirmation field is required"
	}
	if c, okc := asString(confirmation); okc && !isEmpty(confirmation) {
		if p, okp := asString(password); okp && p != c {
			errors["passwordConfirmation"] = "Passwords must match"
		}
	}

	if phone := fields["phone"]; !isEmpty(phone) {
		if s, ok := asString(phone); !ok {
			errors["phone"] = "Phone must be a string"
		} else if !validPhone(s) {
			errors["phone"] = "Phone is invalid"
		}
	}

	return result(errors)
}

// ValidateLogin checks a login payload.
func ValidateLogin(fields Fields) Result {
	errors := map[string]string{}

	email := fields["email"]
	if _, ok := asString(email); !ok {
		errors["email"] = "Email must be a string"
	} else if s, _ := asString(email); !validEmail(s) {
		errors["email"] = "Email is invalid"
	}
	if isEmpty(email) {
		errors["email"] = "Email field is required"
	}

	password := fields["password"]
	if _, ok := asString(password); !ok {
		errors["password"] = "Password must be a string"
	}
	if isEmpty(password) {
		errors["password"] = "Password field is required"
	}

	return result(errors)
}

// ValidateUpdateUser checks a partial profile update. All fields are
// optional; an empty-string phone is a valid request to clear it.
func ValidateUpdateUser(fields Fields) Result {
	errors := map[string]string{}

	if firstName := fields["firstName"]; !isEmpty(firstName) {
		if _, ok := asString(firstName); !ok {
			errors["firstName"] = "First name must be a string"
		} else if s, _ := asString(firstName); !lengthBetween(s, 2, 15) {
			errors["firstName"] = "First name must be between 2 and 15 characters"
		}
	}

	if lastName := fields["lastName"]; !isEmpty(lastName) {
		if _, ok := asString(lastName); !ok {
			errors["lastName"] = "Last name must be a string"
		} else if s, _ := asString(lastName); !lengthBetween(s, 2, 20) {
			errors["lastName"] = "Last name must be between 2 and 20 characters"
		}
	}

	if phone := fields["phone"]; !isEmpty(phone) {
		if s, ok := asString(phone); !ok {
			errors["phone"] = "Phone must be a string"
		} else if !validPhone(s) {
			errors["phone"] = "Phone is invalid"
		}
	}

	return result(errors)
}
