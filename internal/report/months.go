package report

import "strings"

// months is the fixed Portuguese month table used in headings and
// filenames.
var months = [12]string{
	"janeiro", "fevereiro", "marco", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the lowercase Portuguese name for a month in 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return months[month-1]
}

// slug lowercases a value and joins its words with hyphens so it can be
// embedded in a filename.
func slug(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, "-")
}

// firstName extracts the leading word of a full name.
func firstName(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
