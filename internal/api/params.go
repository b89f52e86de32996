package api

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var symbolPattern = regexp.MustCompile(`^[A-Za-z]{1,10}$`)

// symbolParam reads and normalizes the required symbol query parameter.
func symbolParam(c *gin.Context) (string, error) {
	symbol := c.Query("symbol")
	if symbol == "" {
		return "", fmt.Errorf("symbol is required")
	}
	if !symbolPattern.MatchString(symbol) {
		return "", fmt.Errorf("symbol must be 1-10 letters")
	}
	return strings.ToUpper(symbol), nil
}

// intParam reads a bounded integer query parameter with a default.
func intParam(c *gin.Context, name string, def, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	if value > max {
		return 0, fmt.Errorf("%s must not exceed %d", name, max)
	}
	return value, nil
}
