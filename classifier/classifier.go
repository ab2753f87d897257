package classifier

import "regexp"

// Thresholds for the lexical rules. A token must clear these before it
// is treated as volatile, so short route words like "v2" or "api" stay
// literal.
const (
	// minHexLen is the shortest standalone hex token treated as a hash.
	minHexLen = 12
	// minDigitLen is the longest all-digit token still treated as a
	// route word; anything longer is an ID.
	minDigitLen = 5
	// minHexRunLen is the shortest embedded hex run that marks a mixed
	// token (such as a fingerprinted asset name) as volatile.
	minHexRunLen = 8
	// minMixedLen is the minimum total length for the embedded-run rule.
	minMixedLen = 10
)

var (
	uuidRe   = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)
	hexRe    = regexp.MustCompile(`^[a-fA-F0-9]{12,}$`)
	hexRunRe = regexp.MustCompile(`[a-fA-F0-9]{8,}`)
)

// Rule names which lexical rule matched a token.
type Rule string

const (
	RuleUUID      Rule = "uuid"
	RuleHex       Rule = "hex"
	RuleNumericID Rule = "numeric-id"
	RuleHexRun    Rule = "hex-run"
	RuleNone      Rule = "none"
)

// Classify returns the first rule that matches token, in order:
//
//  1. RuleUUID: a full UUID in 8-4-4-4-12 form, any case
//  2. RuleHex: a standalone hex string of 12 or more characters
//  3. RuleNumericID: an all-digit string longer than 5 characters
//  4. RuleHexRun: a token longer than 10 characters containing a hex
//     run of 8 or more characters, which catches fingerprinted asset
//     names like "app.3f9a1c2b4d.js"
//
// RuleNone means the token is a stable route word.
func Classify(token string) Rule {
	if uuidRe.MatchString(token) {
		return RuleUUID
	}
	if hexRe.MatchString(token) {
		return RuleHex
	}
	if IsAllDigits(token) && len(token) > minDigitLen {
		return RuleNumericID
	}
	if len(token) > minMixedLen && hexRunRe.MatchString(token) {
		return RuleHexRun
	}
	return RuleNone
}

// IsVolatile reports whether token looks like a dynamic identifier.
func IsVolatile(token string) bool {
	return Classify(token) != RuleNone
}

// IsAllDigits reports whether s is non-empty and consists only of ASCII
// digits. Unicode digits are deliberately not accepted; URL tokens are
// ASCII by the time they reach the classifier.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
