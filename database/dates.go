package database

import (
	"strings"
	"time"
)

// Short UK date, e.g. 15/03/2024
const DATE_FORMAT = "02/01/2006"

// Same as DATE_FORMAT, but also accepts single-digit days and months
const dateParseFormat = "2/1/2006"

func FormatDate(date time.Time) string {
	return date.Format(DATE_FORMAT)
}

func ParseDate(input string) (time.Time, error) {
	result, err := time.Parse(dateParseFormat, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, &DateParseError{Value: input, Err: err}
	}

	return result, nil
}
