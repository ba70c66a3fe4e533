package validation

import (
	"math"
	"strconv"
	"strings"

	"selli/internal/model"
)

// ValidateAd checks an ad creation payload. The payload is expected to have
// gone through Coerce for price, category and isUsed. Every violated field
// is reported; later rules overwrite earlier messages for the same field.
func ValidateAd(fields Fields) Result {
	errors := map[string]string{}

	title := fields["title"]
	if _, ok := asString(title); !ok {
		errors["title"] = "Title must be a string"
	} else if s, _ := asString(title); !lengthBetween(s, 5, 70) {
		errors["title"] = "Title must be between 5 and 70 characters"
	}
	if isEmpty(title) {
		errors["title"] = "Title field is required"
	}

	description := fields["description"]
	if _, ok := asString(description); !ok {
		errors["description"] = "Description must be a string"
	} else if s, _ := asString(description); !lengthBetween(s, 20, 2000) {
		errors["description"] = "Description must be between 20 and 2000 characters"
	}
	if isEmpty(description) {
		errors["description"] = "Description field is required"
	}

	location := fields["location"]
	if _, ok := asString(location); !ok {
		errors["location"] = "Location must be a string"
	} else if s, _ := asString(location); !lengthBetween(s, 2, 20) {
		errors["location"] = "Location must be between 2 and 20 characters"
	}
	if isEmpty(location) {
		errors["location"] = "Location field is required"
	}

	price := fields["price"]
	if _, ok := asNumber(price); !ok {
		errors["price"] = "Price must be an number"
	} else if p, _ := asNumber(price); p <= 0 {
		errors["price"] = "Price can not be less or equal 0"
	}
	if isEmpty(price) {
		errors["price"] = "Price field is required"
	}

	isUsed := fields["isUsed"]
	if _, ok := asBool(isUsed); !ok {
		errors["isUsed"] = "Condition must be an boolean"
	}
	if isEmpty(isUsed) {
		errors["isUsed"] = "Condition field is required"
	}

	if phone := fields["phone"]; !isEmpty(phone) {
		if s, ok := asString(phone); !ok {
			errors["phone"] = "Phone must be a string"
		} else if !validPhone(s) {
			errors["phone"] = "Phone is invalid"
		}
	}

	category := fields["category"]
	if _, ok := asNumber(category); !ok {
		errors["category"] = "Category must be an number"
	} else if c, _ := asNumber(category); !wholeCategory(c) {
		errors["category"] = "Category is invalid"
	}
	if isEmpty(category) {
		errors["category"] = "Category field is required"
	}

	return result(errors)
}

// ValidateAdSearch checks search query parameters. Every field is optional;
// values arrive as raw query strings.
func ValidateAdSearch(category, minPrice, maxPrice string) Result {
	errors := map[string]string{}

	if !isEmpty(category) {
		if c, err := strconv.Atoi(strings.TrimSpace(category)); err != nil || !model.ValidCategory(c) {
			errors["category"] = "Category is invalid"
		}
	}
	if !isEmpty(minPrice) {
		if p, err := strconv.ParseFloat(strings.TrimSpace(minPrice), 64); err != nil {
			errors["minPrice"] = "Minimal price must be an number"
		} else if p < 0 {
			errors["minPrice"] = "Minimal price can not be less than 0"
		}
	}
	if !isEmpty(maxPrice) {
		if p, err := strconv.ParseFloat(strings.TrimSpace(maxPrice), 64); err != nil {
			errors["maxPrice"] = "Maximum price must be an number"
		} else if p < 0 {
			errors["maxPrice"] = "Maximum price can not be less than 0"
		}
	}

	return result(errors)
}

// wholeCategory is true when f is an integer key of the category table.
func wholeCategory(f float64) bool {
	if f != math.Trunc(f) {
		return false
	}
	return model.ValidCategory(int(f))
}
