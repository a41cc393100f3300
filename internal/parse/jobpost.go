package parse

import "time"

// JobPostLocation returns the formatted location of a job posting
// document.
func JobPostLocation(doc map[string]any) string {
	return stringAt(mapAt(doc, "data"), "formattedLocation")
}

// JobPostIsRemote reports whether the posting allows remote work.
func JobPostIsRemote(doc map[string]any) bool {
	return boolAt(mapAt(doc, "data"), "workRemoteAllowed")
}

// JobPostTitle returns the posting title.
func JobPostTitle(doc map[string]any) string {
	return stringAt(mapAt(doc, "data"), "title")
}

// JobPostDescription returns the full description text.
func JobPostDescription(doc map[string]any) string {
	return stringAt(mapAt(mapAt(doc, "data"), "description"), "text")
}

// JobPostApplyURL returns where to apply, preferring the easy-apply link
// over the company's own apply page. Empty when the posting carries
// neither.
func JobPostApplyURL(doc map[string]any) string {
	applyMethod := mapAt(mapAt(doc, "data"), "applyMethod")
	if u := stringAt(applyMethod, "easyApplyUrl"); u != "" {
		return u
	}
	return stringAt(applyMethod, "companyApplyUrl")
}

// JobPostDate returns the original listing time as an RFC 3339 UTC
// string, or "" when the document has no timestamp.
func JobPostDate(doc map[string]any) string {
	ms := int64At(mapAt(doc, "data"), "originalListedAt")
	if ms == 0 {
		return ""
	}
	return EpochMillisToUTC(ms)
}

// EpochMillisToUTC converts a provider epoch-millisecond timestamp to an
// RFC 3339 UTC string.
func EpochMillisToUTC(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
