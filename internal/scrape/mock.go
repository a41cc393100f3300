package scrape

import "github.com/jonathan/recruiter-blast/internal/entity"

// MockCompany returns the fixed company used when live data is
// disabled.
func MockCompany() entity.Company {
	return entity.Company{
		Name:          "Company ABC",
		Industry:      "Technology",
		Description:   "A leading technology company specializing in AI.",
		EmployeeCount: 500,
		Domain:        "companyabc.com",
	}
}

// MockRecruiters returns the fixed recruiter pair used when live data
// is disabled.
func MockRecruiters() []entity.Employee {
	return []entity.Employee{
		{
			ID:         1,
			FirstName:  "Jane",
			LastName:   "Doe",
			FullName:   "Jane Doe",
			Headline:   "HR Manager",
			Locale:     "Los Angeles",
			ProfileURL: "https://linkedin.com/in/jane",
		},
		{
			ID:         2,
			FirstName:  "John",
			LastName:   "Smith",
			FullName:   "John Smith",
			Headline:   "Senior Recruiter",
			Locale:     "New York",
			ProfileURL: "https://linkedin.com/in/john",
		},
	}
}
