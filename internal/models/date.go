package models

import (
	"strconv"
	"strings"
)

// ValidateDate checks a "DD/MM/YY" task date. Years are read as 20YY.
// A date with every part empty ("" or "//") is valid and means "no date".
// A date with only some parts filled in returns ErrDateIncomplete.
func ValidateDate(value string) error {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return ErrDateFormat
	}

	filled := 0
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(p) > 2 || !isDigits(p) {
			return ErrDateFormat
		}
		if len(p) == 2 {
			filled++
		}
	}

	if filled == 0 && parts[0] == "" && parts[1] == "" && parts[2] == "" {
		return nil
	}
	if filled != 3 {
		return ErrDateIncomplete
	}

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if day < 1 || day > DaysInMonth(month, 2000+year) {
		return ErrInvalidDay
	}
	return nil
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(month, year int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
