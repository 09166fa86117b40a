package util

import (
	"regexp"
	"strconv"
	"strings"
)

// FilterQuery represents the parsed components of a filter string.
type FilterQuery struct {
	Status []string
	Owner  []string
	Min    *float64
	Max    *float64
	Text   []string
}

var (
	statusRegex = regexp.MustCompile(`status:(\w+)`)
	ownerRegex  = regexp.MustCompile(`owner:(?:"([^"]+)"|(\S+))`)
	minRegex    = regexp.MustCompile(`min:(\d+(?:\.\d+)?)`)
	maxRegex    = regexp.MustCompile(`max:(\d+(?:\.\d+)?)`)
)

// ParseFilterQuery breaks down a raw filter string into its structured components.
// Unrecognized words become free-text search terms.
func ParseFilterQuery(query string) FilterQuery {
	fq := FilterQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			for _, group := range match[1:] {
				if group != "" {
					values = append(values, group)
					break
				}
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	fq.Status = extract(statusRegex)
	fq.Owner = extract(ownerRegex)
	if vals := extract(minRegex); len(vals) > 0 {
		if f, err := strconv.ParseFloat(vals[0], 64); err == nil {
			fq.Min = &f
		}
	}
	if vals := extract(maxRegex); len(vals) > 0 {
		if f, err := strconv.ParseFloat(vals[0], 64); err == nil {
			fq.Max = &f
		}
	}
	fq.Text = strings.Fields(query)

	return fq
}
