// Package technology turns freeform technology annotations such as
// "Java and Spring MVC, JPA" into ordered lists of names.
package technology

import (
	"regexp"
	"strings"
)

var (
	clauseSep = regexp.MustCompile(` (A|and) `)
	nameSep   = regexp.MustCompile(`,\s*`)
)

// Parse returns nil for a blank annotation. Names keep their original order
// and duplicates; empty names produced by stray commas are kept as well.
func Parse(technology string) []string {
	technology = strings.TrimSpace(technology)
	if technology == "" {
		return nil
	}

	var names []string
	for _, clause := range clauseSep.Split(technology, -1) {
		names = append(names, nameSep.Split(clause, -1)...)
	}
	return names
}
