package content

import (
	"regexp"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	nonWordRe     = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// FleschReadingEase computes the Flesch reading-ease index. Text without words
// scores 0.
func FleschReadingEase(text string) float64 {
	words := readabilityWords(text)
	if len(words) == 0 {
		return 0
	}

	sentences := len(sentenceEndRe.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return textutil.Round2(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord)
}

func readabilityWords(text string) []string {
	return strings.Fields(nonWordRe.ReplaceAllString(strings.ToLower(text), " "))
}

// countSyllables approximates syllables by counting vowel groups, dropping a
// trailing silent e.
func countSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
