package parsers

import (
	"strconv"
	"strings"
)

// SplitLine splits a raw line on the delimiter. No trimming, quoting or
// escaping is applied.
func SplitLine(line, delimiter string) []string {
	return strings.Split(line, delimiter)
}

// FormatLine renders the first minFields fields of a record as
//
//	Line#{n} :Field#1={f0} ==> Field#2={f1} ==> ... ==> Field#N={fN-1}
//
// It returns false, and no text, when the record has fewer than minFields fields.
func FormatLine(fields []string, minFields, lineNumber int) (string, bool) {
	if len(fields) < minFields {
		return "", false
	}

	var b strings.Builder
	b.WriteString("Line#")
	b.WriteString(strconv.Itoa(lineNumber))
	b.WriteString(" :")
	for i := 0; i < minFields; i++ {
		if i > 0 {
			b.WriteString(" ==> ")
		}
		b.WriteString("Field#")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('=')
		b.WriteString(fields[i])
	}
	return b.String(), true
}
