package parse

import (
	"strconv"
	"strings"
)

// The company card document carries a heterogeneous "included" list; the
// entry with an employeeCount key is the company record itself, industry
// and company-id live in sibling entries identified by their URN type.
const (
	companyURNMarker  = "company"
	industryURNMarker = "fsd_industry"
)

// CompanyName returns the company display name from a company card
// document.
func CompanyName(doc map[string]any) string {
	for _, entry := range includedEntries(doc) {
		if _, ok := entry["employeeCount"]; ok {
			return stringAt(entry, "name")
		}
	}
	return ""
}

// CompanyDescription returns the company blurb.
func CompanyDescription(doc map[string]any) string {
	for _, entry := range includedEntries(doc) {
		if _, ok := entry["employeeCount"]; ok {
			return stringAt(entry, "description")
		}
	}
	return ""
}

// CompanyEmployeeCount returns the headcount the provider reports.
func CompanyEmployeeCount(doc map[string]any) int {
	for _, entry := range includedEntries(doc) {
		if _, ok := entry["employeeCount"]; ok {
			return intAt(entry, "employeeCount")
		}
	}
	return 0
}

// CompanyIndustry returns the industry name attached to the card.
func CompanyIndustry(doc map[string]any) string {
	for _, entry := range includedEntries(doc) {
		if strings.Contains(stringAt(entry, "entityUrn"), industryURNMarker) {
			return stringAt(entry, "name")
		}
	}
	return ""
}

// CompanyID returns the numeric company identifier from the first
// company-typed URN in the document, or 0 when none is present.
func CompanyID(doc map[string]any) int64 {
	for _, entry := range includedEntries(doc) {
		urn := stringAt(entry, "entityUrn")
		if urn == "" || !strings.Contains(urn, companyURNMarker) {
			continue
		}
		if id := trailingID(urn); id != 0 {
			return id
		}
	}
	return 0
}

// CompanyWebsiteURL returns the raw website URL from a company entity
// document.
func CompanyWebsiteURL(doc map[string]any) string {
	return stringAt(mapAt(doc, "data"), "websiteUrl")
}

// trailingID parses the numeric identifier from the last colon-separated
// segment of a URN such as "urn:li:fsd_company:69318116".
func trailingID(urn string) int64 {
	seg := urn[strings.LastIndex(urn, ":")+1:]
	id, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
