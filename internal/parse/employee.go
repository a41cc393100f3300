package parse

import "strings"

// EmployeeID returns the numeric tracking identifier of one search
// result row (the last colon-separated segment of its trackingUrn).
func EmployeeID(row map[string]any) int64 {
	urn := stringAt(row, "trackingUrn")
	if urn == "" {
		return 0
	}
	return trailingID(urn)
}

// EmployeeHeadline returns the row's primary subtitle (job headline).
func EmployeeHeadline(row map[string]any) string {
	return stringAt(mapAt(row, "primarySubtitle"), "text")
}

// EmployeeLocale returns the row's secondary subtitle (location).
func EmployeeLocale(row map[string]any) string {
	return stringAt(mapAt(row, "secondarySubtitle"), "text")
}

// EmployeeName returns the display name of the row, stripped of any
// credential suffix after the first comma ("Jane Doe, PHR" -> "Jane Doe").
func EmployeeName(row map[string]any) string {
	name := stringAt(mapAt(row, "title"), "text")
	name, _, _ = strings.Cut(name, ",")
	return strings.TrimSpace(name)
}

// EmployeeProfileURL returns the row's profile link with tracking query
// parameters removed.
func EmployeeProfileURL(row map[string]any) string {
	u := stringAt(row, "navigationUrl")
	u, _, _ = strings.Cut(u, "?")
	return u
}
