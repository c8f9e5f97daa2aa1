package utils

import (
	"math"
	"strconv"
)

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// ParseInt64 converte valores numéricos em string, aceitando também "12.0"
func ParseInt64(value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		return v, nil
	}

	f, fErr := strconv.ParseFloat(value, 64)
	if fErr != nil {
		return 0, err
	}

	return int64(math.Round(f)), nil
}
