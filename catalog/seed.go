package catalog

import (
	"time"

	"github.com/fwojciec/regdoc"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedDocuments returns the sample documents written on first start.
func seedDocuments() []*regdoc.Document {
	return []*regdoc.Document{
		{
			ID:            "1",
			Title:         "Banking Act",
			Type:          regdoc.TypeAct,
			Category:      regdoc.CategoryBanking,
			Authority:     regdoc.AuthorityBoB,
			Description:   "The primary legislation governing banking operations in Botswana",
			Content:       "This Act provides for the licensing and regulation of banking business...",
			PublishedDate: date(2023, time.January, 15),
			LastModified:  date(2024, time.January, 15),
			Tags:          []string{"banking", "licensing", "regulation"},
			Requirements: []string{
				"Minimum capital requirement of P10 million",
				"Fit and proper persons as directors",
				"Adequate internal controls and risk management",
				"Compliance with prudential requirements",
			},
		},
		{
			ID:            "2",
			Title:         "Insurance Industry Act",
			Type:          regdoc.TypeAct,
			Category:      regdoc.CategoryInsurance,
			Authority:     regdoc.AuthorityNBFIRA,
			Description:   "Comprehensive legislation for insurance companies and intermediaries",
			Content:       "This Act regulates the conduct of insurance business in Botswana...",
			PublishedDate: date(2023, time.February, 20),
			LastModified:  date(2024, time.February, 20),
			Tags:          []string{"insurance", "intermediaries", "solvency"},
			Requirements: []string{
				"Minimum solvency capital requirement",
				"Professional indemnity insurance",
				"Qualified actuarial services",
				"Regular financial reporting",
			},
		},
		{
			ID:            "3",
			Title:         "Anti-Money Laundering Guidelines",
			Type:          regdoc.TypeGuideline,
			Category:      regdoc.CategoryGeneral,
			Authority:     regdoc.AuthorityFIA,
			Description:   "Guidelines for preventing money laundering and terrorist financing",
			Content:       "These guidelines outline the requirements for AML/CFT compliance...",
			PublishedDate: date(2023, time.March, 10),
			LastModified:  date(2024, time.March, 10),
			Tags:          []string{"AML", "compliance", "reporting"},
			Requirements: []string{
				"Customer due diligence procedures",
				"Suspicious transaction reporting",
				"Record keeping requirements",
				"Staff training programs",
			},
		},
	}
}

// seedFAQs returns the sample FAQs written on first start.
func seedFAQs() []*regdoc.FAQ {
	return []*regdoc.FAQ{
		{
			ID:        "1",
			Question:  "What are the minimum capital requirements for starting a bank?",
			Answer:    "The minimum capital requirement for starting a commercial bank in Botswana is P10 million as stipulated in the Banking Act.",
			Category:  regdoc.CategoryBanking,
			Authority: regdoc.AuthorityBoB,
		},
		{
			ID:        "2",
			Question:  "How long does the insurance license application process take?",
			Answer:    "The insurance license application process typically takes 90-120 days from the date of receipt of a complete application.",
			Category:  regdoc.CategoryInsurance,
			Authority: regdoc.AuthorityNBFIRA,
		},
	}
}
