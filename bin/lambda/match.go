package main

import "strings"

// matchTweets filters tweets to those containing every search term and
// every required code point, preserving timeline order.
func matchTweets(tweets []Tweet, terms []string, codePoints []int) []string {
	var matches []string
	for _, tweet := range tweets {
		if tweetMatches(tweet.Body(), terms, codePoints) {
			matches = append(matches, tweet.Body())
		}
	}
	return matches
}

// tweetMatches requires ALL search terms as case-insensitive substrings
// and ALL code points among the text's characters. Empty filters match
// everything.
func tweetMatches(text string, terms []string, codePoints []int) bool {
	lowered := strings.ToLower(text)
	for _, term := range terms {
		if !strings.Contains(lowered, strings.ToLower(term)) {
			return false
		}
	}

	if len(codePoints) == 0 {
		return true
	}

	present := make(map[rune]struct{}, len(text))
	for _, r := range text {
		present[r] = struct{}{}
	}
	for _, point := range codePoints {
		if _, ok := present[rune(point)]; !ok {
			return false
		}
	}

	return true
}
