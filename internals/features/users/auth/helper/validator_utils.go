package helpers

import (
	"errors"
	"strconv"
)

// ParseYearOfStudy coerces the client's free-text year into an int.
func ParseYearOfStudy(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 6 {
		return 0, errors.New("Invalid year of study")
	}
	return year, nil
}
