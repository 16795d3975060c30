// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import (
	"regexp"
	"strings"
)

// Tokenizer turns raw title/description text into candidate keyword strings
// (single words and 2-3 word phrases) and, separately, hashtag strings.
//
// Phrases capture topical n-grams ("tutorial react", "cara riset keyword")
// that single-word frequency analysis misses. The heuristics exist because
// naive tokenization over titles and descriptions is dominated by
// boilerplate: URLs, calls to action, platform names.
type Tokenizer struct {
	words *Wordlist
}

// NewTokenizer creates a Tokenizer using the given word lists.
func NewTokenizer(words *Wordlist) *Tokenizer {
	return &Tokenizer{words: words}
}

var (
	hashtagPattern    = regexp.MustCompile(`#[A-Za-z0-9_]+`)
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ExtractHashtags returns the lower-cased hashtags found in text, keeping
// the leading '#', deduplicated in first-seen order.
func (t *Tokenizer) ExtractHashtags(text string) []string {
	if text == "" {
		return nil
	}
	matches := hashtagPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// ExtractKeywords returns the deduplicated union of meaningful single words
// and 2-3 word phrases found in text, in first-seen order.
func (t *Tokenizer) ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	words := t.cleanWords(text)
	if len(words) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(candidate string) {
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	// Pass 1: single words.
	for _, w := range words {
		if t.words.IsValidKeywordWord(w) && t.isMeaningfulSingleWord(w) {
			add(w)
		}
	}

	// Pass 2: sliding windows of 2 and 3 consecutive words.
	for size := 2; size <= 3; size++ {
		for i := 0; i+size <= len(words); i++ {
			window := words[i : i+size]
			if !t.allWordsValid(window) {
				continue
			}
			phrase := strings.Join(window, " ")
			if t.isMeaningfulPhrase(phrase, window) {
				add(phrase)
			}
		}
	}

	return out
}

// cleanWords lower-cases text, replaces punctuation with spaces and splits
// on collapsed whitespace.
func (t *Tokenizer) cleanWords(text string) []string {
	cleaned := strings.ToLower(text)
	cleaned = nonAlnumPattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}

func (t *Tokenizer) allWordsValid(window []string) bool {
	for _, w := range window {
		if !t.words.IsValidKeywordWord(w) {
			return false
		}
	}
	return true
}

// isMeaningfulSingleWord decides whether a lone token is worth keeping.
// Words of 5+ characters are accepted outright; 3-4 character words must
// contain both a vowel and a consonant to reject acronym-like noise.
func (t *Tokenizer) isMeaningfulSingleWord(word string) bool {
	if len(word) < minWordLength {
		return false
	}
	if t.words.isGenericSingle(word) {
		return false
	}
	if !isAlphanumeric(word) {
		return false
	}
	if len(word) >= 5 {
		return true
	}
	return hasVowelAndConsonant(word)
}

const (
	minPhraseLength     = 5  // 2-word phrases shorter than this are noise
	maxLongPhraseLength = 25 // 3-word phrases longer than this are sentences
)

// isMeaningfulPhrase decides whether a joined 2-3 word window is a topical
// phrase rather than boilerplate. The phrase must carry at least one
// non-trivial word and must not open or close on a generic pattern.
func (t *Tokenizer) isMeaningfulPhrase(phrase string, window []string) bool {
	if len(window) == 2 && len(phrase) < minPhraseLength {
		return false
	}
	if len(window) == 3 && len(phrase) > maxLongPhraseLength {
		return false
	}
	if t.words.isGenericPhraseLead(window[0]) {
		return false
	}
	if t.words.isGenericPhraseTail(window[len(window)-1]) {
		return false
	}
	for _, w := range window {
		if len(w) >= minWordLength && !t.words.IsStopWord(w) && isAlphanumeric(w) {
			return true
		}
	}
	return false
}
