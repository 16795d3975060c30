// yt-analytics - YouTube Channel Keyword and Upload Analytics
// Copyright 2026 Aditya Argadinata
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AdityaArgadinata/yt-analytics

package keywords

import "strings"

// The word lists are data, not code: the extraction algorithm never changes
// when a list grows. Defaults cover Indonesian and English because that is
// what the analyzed channels publish in; additional entries can be supplied
// through configuration.

// defaultStopWords are functional words carrying no topical meaning:
// conjunctions, pronouns, auxiliary verbs, question words.
var defaultStopWords = []string{
	// Indonesian
	"dan", "atau", "yang", "ini", "itu", "di", "ke", "dari", "untuk",
	"dengan", "pada", "adalah", "akan", "telah", "dapat", "sudah", "juga",
	"tidak", "ada", "jika", "saya", "kamu", "dia", "kita", "mereka",
	"apa", "siapa", "kapan", "dimana", "mengapa", "bagaimana", "kok",
	"nggak", "gak", "udah", "aja", "kan", "tapi", "bisa", "mau", "lagi",
	// English
	"the", "and", "or", "that", "this", "these", "those", "in", "to",
	"from", "for", "with", "on", "at", "by", "of", "is", "are", "was",
	"were", "be", "been", "being", "will", "have", "has", "had", "can",
	"could", "should", "would", "may", "might", "must", "shall", "do",
	"does", "did", "not", "no", "yes", "if", "when", "where", "why",
	"how", "what", "who", "whom", "which", "i", "you", "he", "she", "it",
	"we", "they", "me", "him", "her", "us", "them", "my", "your", "his",
	"its", "our", "their", "a", "an", "but", "so", "too", "out", "up",
	"down", "into", "over", "under", "about", "again", "once", "here",
	"there", "then", "than", "all", "any", "both", "each", "more", "most",
	"some", "such", "only", "own", "just", "now",
}

// defaultNoiseWords are structurally valid tokens that dominate YouTube
// titles and descriptions without describing content: URL components,
// domain suffixes, platform names, upload boilerplate, generic tech terms
// and marketing adjectives.
var defaultNoiseWords = []string{
	// URL components and domains
	"http", "https", "www", "com", "net", "org", "html", "href", "url",
	"youtu", "goo", "bit", "linktr", "tinyurl", "shorturl", "wht", "wa",
	// Platforms and social media
	"youtube", "instagram", "tiktok", "facebook", "twitter", "twitch",
	"discord", "telegram", "whatsapp", "spotify", "email", "gmail",
	// YouTube boilerplate and calls to action
	"subscribe", "subscriber", "like", "comment", "share", "follow",
	"channel", "video", "videos", "views", "watch", "playlist", "upload",
	"notification", "notifications", "bell", "link", "bio",
	"official", "shorts", "live", "streaming", "stream",
	"tonton", "klik", "jangan", "lupa", "dukung", "terbaru",
	// Generic tech/marketing filler
	"download", "gratis", "free", "update", "viral", "trending",
	"terbaik", "edition", "episode", "part", "full",
}

// defaultGenericSingles are adjectives too generic to stand alone as a
// keyword, though they may still appear inside a phrase.
var defaultGenericSingles = []string{
	"very", "good", "new", "best", "top", "great", "nice", "cool",
	"real", "true", "big", "small", "easy", "hard", "much", "many",
	"sangat", "bagus", "baru", "keren", "banyak", "mudah", "cepat",
}

// genericPhraseLeads are words a meaningful phrase never starts with.
var genericPhraseLeads = []string{
	"ini", "itu", "this", "that", "the", "and", "dan", "yang",
}

// genericPhraseTails are words a meaningful phrase never ends with.
var genericPhraseTails = []string{
	"video", "subscribe", "views", "channel", "youtube", "like",
	"share", "comment", "banget", "sekali",
}

// trackingTokens are URL-shortener and tracking-parameter fragments that
// survive punctuation stripping.
var trackingTokens = []string{
	"utm", "ref", "bit", "fbclid", "gclid", "igshid", "feature",
}

// Wordlist is the immutable set of noise and stop words consulted by the
// tokenizer and filter. Build one with NewWordlist and share it freely; it
// is safe for concurrent reads.
type Wordlist struct {
	stop           map[string]struct{}
	noise          map[string]struct{}
	genericSingles map[string]struct{}
	phraseLeads    map[string]struct{}
	phraseTails    map[string]struct{}
	tracking       map[string]struct{}
}

// NewWordlist builds a Wordlist from the built-in defaults plus optional
// extra stop and noise words (lower-cased on insertion).
func NewWordlist(extraStop, extraNoise []string) *Wordlist {
	w := &Wordlist{
		stop:           toSet(defaultStopWords),
		noise:          toSet(defaultNoiseWords),
		genericSingles: toSet(defaultGenericSingles),
		phraseLeads:    toSet(genericPhraseLeads),
		phraseTails:    toSet(genericPhraseTails),
		tracking:       toSet(trackingTokens),
	}
	for _, s := range extraStop {
		w.stop[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range extraNoise {
		w.noise[strings.ToLower(s)] = struct{}{}
	}
	return w
}

// IsStopWord reports whether word is a functional stop word.
func (w *Wordlist) IsStopWord(word string) bool {
	_, ok := w.stop[word]
	return ok
}

// IsNoiseWord reports whether word is in the platform/boilerplate noise set.
func (w *Wordlist) IsNoiseWord(word string) bool {
	_, ok := w.noise[word]
	return ok
}

func (w *Wordlist) isGenericSingle(word string) bool {
	_, ok := w.genericSingles[word]
	return ok
}

func (w *Wordlist) isTrackingToken(word string) bool {
	_, ok := w.tracking[word]
	return ok
}

func (w *Wordlist) isGenericPhraseLead(word string) bool {
	_, ok := w.phraseLeads[word]
	return ok
}

func (w *Wordlist) isGenericPhraseTail(word string) bool {
	_, ok := w.phraseTails[word]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
