// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import "strings"

// minWordLength is the shortest token allowed into any candidate.
const minWordLength = 3

// IsValidKeywordWord is the noise filter applied to every candidate word
// before it can participate in a single-word or phrase candidate.
//
// It is a pure predicate with no side effects. A word is rejected when it is
// too short, a stop word, a known noise term, purely numeric, or looks like
// a URL component.
func (w *Wordlist) IsValidKeywordWord(word string) bool {
	if len(word) < minWordLength {
		return false
	}
	if w.IsStopWord(word) {
		return false
	}
	if w.IsNoiseWord(word) {
		return false
	}
	if isNumeric(word) {
		return false
	}
	if w.looksLikeURLComponent(word) {
		return false
	}
	return true
}

// looksLikeURLComponent detects tokens that are fragments of links rather
// than language: protocol prefixes, www hosts, domain suffixes, emails and
// shortener/tracking parameters.
func (w *Wordlist) looksLikeURLComponent(word string) bool {
	if strings.Contains(word, "://") || strings.Contains(word, "@") {
		return true
	}
	if strings.HasPrefix(word, "www.") || strings.HasPrefix(word, "http") {
		return true
	}
	if hasDomainSuffix(word) {
		return true
	}
	return w.isTrackingToken(word)
}

// domainSuffixes are TLDs commonly seen in video descriptions.
var domainSuffixes = []string{
	".com", ".net", ".org", ".id", ".co", ".io", ".tv", ".be", ".ly",
	".gg", ".me", ".info", ".xyz", ".store", ".shop",
}

func hasDomainSuffix(word string) bool {
	if !strings.Contains(word, ".") {
		return false
	}
	for _, suffix := range domainSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

// isNumeric reports whether word consists entirely of ASCII digits.
func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isAlphanumeric reports whether word consists entirely of ASCII letters
// and digits.
func isAlphanumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// hasVowelAndConsonant is the heuristic that rejects acronym-like noise
// among short words: a pronounceable 3-4 letter word has at least one vowel
// and one consonant.
func hasVowelAndConsonant(word string) bool {
	var vowel, consonant bool
	for _, r := range word {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			vowel = true
		default:
			if r >= 'a' && r <= 'z' {
				consonant = true
			}
		}
	}
	return vowel && consonant
}
