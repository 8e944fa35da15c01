package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the available language that best serves the
// Accept-Language header, honoring quality values and CLDR language
// distances ("en-GB" is served by "en", "nb" by "no").
// Returns the first available language when nothing matches or the header
// is empty or malformed, and "" when available is empty.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		index = append(index, i)
	}
	if len(supported) == 0 {
		return available[0]
	}

	_, i, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return available[0]
	}
	return available[index[i]]
}
