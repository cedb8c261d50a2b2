package catalog

import (
	"regexp"
	"strings"
	"unicode"
)

// knownAwards is the closed set of award levels the catalog recognizes.
var knownAwards = map[string]struct{}{
	"AA":          {},
	"AS":          {},
	"AAS":         {},
	"BAS":         {},
	"BS":          {},
	"CERTIFICATE": {},
}

// creditBands gives the plausible total-credit range per award level.
// Rows outside their band are catalog noise, typically policy text that the
// scraper misparsed as a program row.
var creditBands = map[string][2]int{
	"AA":          {45, 83},
	"AS":          {45, 83},
	"AAS":         {45, 83},
	"BS":          {100, 132},
	"BAS":         {100, 132},
	"CERTIFICATE": {9, 45},
}

// degreePrefixes are strong signals that a name is a genuine program title.
var degreePrefixes = []string{
	"associate in arts",
	"associate in science",
	"bachelor of science",
	"bachelor of applied science",
	"certificate",
	"advanced technical certificate",
}

// programHints is a fixed vocabulary of program-domain keywords. A name
// containing any of these as a whole word passes the title check.
var programHints = []string{
	"accounting", "animation", "architecture", "aviation", "biomedical", "biotechnology", "business",
	"chemistry", "civil", "clinical", "computer", "construction", "criminal", "culinary", "cyber",
	"database", "dental", "diagnostic", "early childhood", "electronics", "engineering",
	"entrepreneurship", "fashion", "film", "financial", "fire", "funeral", "game", "graphic",
	"health", "histologic", "hospitality", "human services", "information", "interior", "marketing",
	"medical", "music", "network", "nuclear", "nursing", "opticianry", "paralegal", "photographic",
	"physical therapist", "pilot", "radiation", "radiography", "respiratory", "sign language",
	"surgical", "translation", "transportation", "veterinary", "web",
}

// codePattern matches an explicit program-code token such as "Code: 10345".
var codePattern = regexp.MustCompile(`(?i)\bCode:\s*\d{3,6}\b`)

// IsValidProgram reports whether a catalog row is a genuine program offering.
// Rules apply in order; the first failure rejects. The filter is a pure
// predicate shared by the deterministic recommender and the tool dispatcher
// so both paths see the same candidate universe.
func IsValidProgram(p Program) bool {
	award := strings.ToUpper(strings.TrimSpace(p.AwardLevel))
	if _, ok := knownAwards[award]; !ok {
		return false
	}

	band := creditBands[award]
	if p.TotalCredits < band[0] || p.TotalCredits > band[1] {
		return false
	}

	name := strings.TrimSpace(p.Name)
	if !looksLikeProgramName(name) {
		return false
	}

	// Sentence fragments from misparsed paragraphs start lowercase.
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		break
	}

	return true
}

// looksLikeProgramName reports whether a name reads as a program title rather
// than a paragraph fragment: a degree prefix, an explicit program code, or a
// whole-word hit in the program-domain vocabulary.
func looksLikeProgramName(name string) bool {
	if len(name) < 8 {
		return false
	}

	lower := strings.ToLower(name)
	for _, prefix := range degreePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	if codePattern.MatchString(name) {
		return true
	}

	padded := " " + lower + " "
	for _, hint := range programHints {
		if strings.Contains(padded, " "+hint+" ") {
			return true
		}
	}

	return false
}
