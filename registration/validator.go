package registration

import (
	"regexp"
	"unicode/utf8"

	"github.com/badoux/checkmail"
)

var shirtSizes = map[string]bool{
	"S":   true,
	"M":   true,
	"L":   true,
	"XL":  true,
	"XXL": true,
}

const (
	maxMembers = 9
	minRobots  = 1
	maxRobots  = 5
)

// Format predicates are package variables so deployments can swap them
// without touching the rule ordering below.
var (
	// EmailFormat accepts syntactically valid addresses.
	EmailFormat = func(email string) bool {
		return checkmail.ValidateFormat(email) == nil
	}

	// PhoneFormat accepts a 9-digit local number or a 10-15 digit number
	// with an optional leading plus.
	PhoneFormat = regexp.MustCompile(`^[0-9]{9}$|^\+?[0-9]{10,15}$`).MatchString
)

// DefaultPostalCountry is used when a country has no registered pattern.
const DefaultPostalCountry = "PL"

var postalCodePatterns = map[string]*regexp.Regexp{
	"PL": regexp.MustCompile(`^[0-9]{2}-[0-9]{3}$`),
}

// RegisterPostalCodePattern adds or replaces the postal-code pattern for a
// country. Not safe for concurrent use with Validate; register patterns
// during startup.
func RegisterPostalCodePattern(countryCode string, pattern *regexp.Regexp) {
	postalCodePatterns[countryCode] = pattern
}

func validPostalCode(code, countryCode string) bool {
	pattern, ok := postalCodePatterns[countryCode]
	if !ok {
		pattern = postalCodePatterns[DefaultPostalCountry]
	}
	return pattern.MatchString(code)
}

// Validate checks a submission against the registration rules in order and
// stops at the first failing rule; the rule order decides which outcome the
// registrant sees. CorrectAdding means the submission is accepted. Validate
// performs no I/O and is safe to call concurrently.
func Validate(sub Submission) Outcome {
	if !fits(sub.TeamName, 50) {
		return InvalidTeamName
	}
	if !validCaptain(sub.Captain) {
		return InvalidCaptain
	}
	if !validMembers(sub.Participants) {
		return InvalidParticipant
	}
	if !validRobots(sub.Robots) {
		return InvalidRobot
	}
	if !sub.AgreeTerms || !sub.AgreePrivacy {
		return MissingConsent
	}
	return CorrectAdding
}

// fits reports whether s is non-empty and at most max runes long.
func fits(s string, max int) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= max
}

func validCaptain(c Captain) bool {
	if !fits(c.Name, 50) || !fits(c.Surname, 50) {
		return false
	}
	if !shirtSizes[c.ShirtSize] {
		return false
	}
	if !fits(c.Email, 50) || !EmailFormat(c.Email) {
		return false
	}
	if !fits(c.Phone, 50) || !PhoneFormat(c.Phone) {
		return false
	}
	if !fits(c.Street, 100) {
		return false
	}
	if utf8.RuneCountInString(c.PostalCode) != 6 || !validPostalCode(c.PostalCode, c.Country) {
		return false
	}
	if !fits(c.City, 50) {
		return false
	}
	return utf8.RuneCountInString(c.Country) == 2
}

func validMembers(members []Member) bool {
	if len(members) > maxMembers {
		return false
	}
	for _, m := range members {
		if !fits(m.Name, 50) || !fits(m.Surname, 50) || !shirtSizes[m.ShirtSize] {
			return false
		}
	}
	return true
}

func validRobots(robots []Robot) bool {
	if len(robots) < minRobots || len(robots) > maxRobots {
		return false
	}
	for _, r := range robots {
		if !fits(r.Name, 100) || !fits(r.Category, 100) {
			return false
		}
	}
	return true
}
