package models

import "time"

// Address of a user. ResidenceType is derived from the location by the
// profile owner.
type Address struct {
	Line1         string        `json:"line1"`
	Line2         string        `json:"line2,omitempty"`
	City          string        `json:"city"`
	State         IndianState   `json:"state"`
	PinCode       string        `json:"pinCode"`
	District      string        `json:"district,omitempty"`
	ResidenceType ResidenceType `json:"residenceType"`
}

// HouseholdInfo carries family and income facts. IncomeBand is derived from
// AnnualIncome and IsBPL, never stored authoritatively.
type HouseholdInfo struct {
	FamilySize     int        `json:"familySize"`
	Dependents     int        `json:"dependents"`
	AnnualIncome   float64    `json:"annualIncome"`
	IncomeBand     IncomeBand `json:"incomeBand,omitempty"`
	IsBPL          bool       `json:"isBPL"`
	RationCardType string     `json:"rationCardType,omitempty"` // APL, BPL, AAY or NONE
}

// EducationInfo is a user's educational background.
type EducationInfo struct {
	Level               EducationLevel `json:"level"`
	FieldOfStudy        string         `json:"fieldOfStudy,omitempty"`
	Institution         string         `json:"institution,omitempty"`
	YearOfCompletion    int            `json:"yearOfCompletion,omitempty"`
	IsCurrentlyStudying bool           `json:"isCurrentlyStudying"`
}

// EmploymentInfo is a user's employment details.
type EmploymentInfo struct {
	Status            EmploymentStatus `json:"status"`
	Occupation        string           `json:"occupation,omitempty"`
	Employer          string           `json:"employer,omitempty"`
	AnnualIncome      float64          `json:"annualIncome,omitempty"`
	YearsOfExperience int              `json:"yearsOfExperience,omitempty"`
	Sector            string           `json:"sector,omitempty"`
}

// DisabilityInfo holds a certified disability, if any.
type DisabilityInfo struct {
	Status            DisabilityStatus `json:"status"`
	Percentage        int              `json:"percentage"`
	DisabilityKind    string           `json:"type,omitempty"`
	CertificateNumber string           `json:"certificateNumber,omitempty"`
	IssuingAuthority  string           `json:"issuingAuthority,omitempty"`
	IssueDate         time.Time        `json:"issueDate,omitempty"`
}

// UserProfile is an immutable snapshot of a citizen's self-declared
// attributes, supplied by the profile store. The engine never mutates or
// persists it. Age is always recomputed from DateOfBirth at evaluation time.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName"`

	DateOfBirth    time.Time      `json:"dateOfBirth"`
	Gender         Gender         `json:"gender"`
	SocialCategory SocialCategory `json:"socialCategory"`
	MaritalStatus  MaritalStatus  `json:"maritalStatus"`

	Address Address `json:"address"`

	Household  *HouseholdInfo  `json:"household,omitempty"`
	Education  EducationInfo   `json:"education"`
	Employment EmploymentInfo  `json:"employment"`
	Disability *DisabilityInfo `json:"disability,omitempty"`

	PreferredCategories []SchemeCategory `json:"preferredCategories,omitempty"`

	ProfileCompleteness int       `json:"profileCompleteness"`
	CreatedAt           time.Time `json:"createdAt,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty"`
	Verified            bool      `json:"verified"`
	KYCCompleted        bool      `json:"kycCompleted"`
}

// AgeAt computes the user's age at the reference time. The stored age is
// never trusted.
func (p *UserProfile) AgeAt(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	anniversary := time.Date(now.Year(), p.DateOfBirth.Month(), p.DateOfBirth.Day(),
		0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ComputeCompleteness scores how much of the profile is filled in, 0-100.
// Each fact the evaluator can consult counts equally.
func (p *UserProfile) ComputeCompleteness() int {
	facts := []bool{
		!p.DateOfBirth.IsZero(),
		p.Gender != "",
		p.SocialCategory != "",
		p.MaritalStatus != "",
		p.Address.State != "",
		p.Address.ResidenceType != "",
		p.Household != nil,
		p.Education.Level != "",
		p.Employment.Status != "",
		p.Disability != nil,
	}
	present := 0
	for _, ok := range facts {
		if ok {
			present++
		}
	}
	return 100 * present / len(facts)
}

// CurrentIncomeBand derives the household's income band. ok is false when
// household facts are missing from the snapshot.
func (p *UserProfile) CurrentIncomeBand() (IncomeBand, bool) {
	if p.Household == nil {
		return IncomeBand{}, false
	}
	return DeriveIncomeBand(p.Household.AnnualIncome, p.Household.IsBPL), true
}
