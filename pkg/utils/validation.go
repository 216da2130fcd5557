package utils

import (
	"regexp"
	"strings"
)

// Field rules mirror the client-side schema the product shipped with:
// each validator checks its rules in order and returns on the FIRST
// violation, so the user ever sees one actionable message at a time.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return NewValidationError("Invalid email address")
	}
	if len(email) > 255 {
		return NewValidationError("Email too long")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return NewValidationError("Password must be at least 6 characters")
	}
	if len(password) > 100 {
		return NewValidationError("Password too long")
	}
	return nil
}

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return NewValidationError("Name must be at least 2 characters")
	}
	if len(name) > 100 {
		return NewValidationError("Name too long")
	}
	return nil
}

func ValidateSignIn(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}

func ValidateSignUp(email, password, displayName string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateDisplayName(displayName)
}

// ValidateProfile checks the health fields. Ranges are inclusive on both ends.
func ValidateProfile(fullName string, age int, heightCm, weightKg float64) error {
	if err := ValidateDisplayName(fullName); err != nil {
		return err
	}
	if age < 13 || age > 120 {
		return NewValidationError("Age must be between 13 and 120")
	}
	if heightCm < 50 || heightCm > 300 {
		return NewValidationError("Invalid height")
	}
	if weightKg < 20 || weightKg > 500 {
		return NewValidationError("Invalid weight")
	}
	return nil
}

func ValidateWeight(weightKg float64) error {
	if weightKg < 20 || weightKg > 500 {
		return NewValidationError("Invalid weight")
	}
	return nil
}
