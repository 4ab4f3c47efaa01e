package cv

import (
	"regexp"
	"strings"
)

// nameWindow is how many leading lines are searched for the candidate's name.
const nameWindow = 8

var (
	nonLetter     = regexp.MustCompile(`[^A-Za-z` + spaceClass + `]`)
	lettersOnly   = regexp.MustCompile(`^[A-Za-z` + spaceClass + `]+$`)
	digitRun      = regexp.MustCompile(`\d+`)
	localPartSeps = regexp.MustCompile(`[._-]+`)
)

// Contact is the best-guess contact block of one resume. Any field may be
// empty when nothing usable was found.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ExtractedCandidate is the result of reading one source document during a scan.
type ExtractedCandidate struct {
	Contact
	SourceID string `json:"source_id"`
	Error    string `json:"error,omitempty"`
}

// ErrNoText is recorded on candidates whose document produced no text.
const ErrNoText = "could not extract text"

// ExtractContact runs the email, phone and name passes over a document.
// lines must be CleanLines(text).
func ExtractContact(text string, lines []string) Contact {
	email := extractEmail(text)
	return Contact{
		Name:  extractName(lines, email),
		Email: email,
		Phone: extractPhone(text),
	}
}

// Extract builds the candidate for one document. An empty text yields empty
// fields and an error marker rather than a failure.
func Extract(sourceID, text string) ExtractedCandidate {
	if trimSpace(text) == "" {
		return ExtractedCandidate{SourceID: sourceID, Error: ErrNoText}
	}
	return ExtractedCandidate{
		Contact:  ExtractContact(text, CleanLines(text)),
		SourceID: sourceID,
	}
}

// nameFromEmail turns "jane.doe92@x.com" into "Jane Doe".
func nameFromEmail(email string) string {
	if email == "" {
		return ""
	}
	local, _, _ := strings.Cut(email, "@")
	local = digitRun.ReplaceAllString(local, "")

	var parts []string
	for _, p := range localPartSeps.Split(local, -1) {
		if p != "" {
			parts = append(parts, titleCase(p))
		}
		if len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, " ")
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// nameCandidates returns the header lines that look like a person's name:
// 2-4 words, each at least two letters, nothing but letters and spaces.
func nameCandidates(lines []string) []string {
	if len(lines) > nameWindow {
		lines = lines[:nameWindow]
	}

	var out []string
	for _, line := range lines {
		cleaned := trimSpace(nonLetter.ReplaceAllString(line, ""))
		if !lettersOnly.MatchString(cleaned) {
			continue
		}
		words := strings.FieldsFunc(cleaned, isSpace)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		ok := true
		for _, w := range words {
			if len(w) < 2 {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, cleaned)
		}
	}
	return out
}

func extractName(lines []string, email string) string {
	if name := shortest(nameCandidates(lines)); name != "" {
		return name
	}
	return nameFromEmail(email)
}
