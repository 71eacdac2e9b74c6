package extract

import "regexp"

// emailPattern matches email-like tokens in plain text. It is deliberately
// permissive: false positives are expected and removed by the filter stage.
var emailPattern = regexp.MustCompile(`(?i)[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// matchAddresses returns every email-like token in text, in order of first
// occurrence. The input should be extracted text, not raw markup: the
// pattern does not cross whitespace, so tag boundaries must already have
// been turned into separators by the collector.
func matchAddresses(text string) []string {
	if text == "" {
		return nil
	}
	return emailPattern.FindAllString(text, -1)
}
