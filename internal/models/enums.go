// Package models defines the domain data structures for the scheme
// recommendation engine.
package models

// SchemeCategory classifies government schemes.
type SchemeCategory string

const (
	CategoryEducation        SchemeCategory = "EDUCATION"
	CategoryHealthcare       SchemeCategory = "HEALTHCARE"
	CategoryAgriculture      SchemeCategory = "AGRICULTURE"
	CategoryHousing          SchemeCategory = "HOUSING"
	CategoryFinance          SchemeCategory = "FINANCE"
	CategoryBusiness         SchemeCategory = "BUSINESS"
	CategoryEmployment       SchemeCategory = "EMPLOYMENT"
	CategorySocialWelfare    SchemeCategory = "SOCIAL_WELFARE"
	CategoryWomenEmpowerment SchemeCategory = "WOMEN_EMPOWERMENT"
	CategoryRuralDevelopment SchemeCategory = "RURAL_DEVELOPMENT"
)

// ApplicationStatus tracks a scheme application through its lifecycle.
type ApplicationStatus string

const (
	ApplicationDraft            ApplicationStatus = "DRAFT"
	ApplicationSubmitted        ApplicationStatus = "SUBMITTED"
	ApplicationUnderReview      ApplicationStatus = "UNDER_REVIEW"
	ApplicationApproved         ApplicationStatus = "APPROVED"
	ApplicationRejected         ApplicationStatus = "REJECTED"
	ApplicationWithdrawn        ApplicationStatus = "WITHDRAWN"
	ApplicationPendingDocuments ApplicationStatus = "PENDING_DOCUMENTS"
)

// Gender options for profiles and scheme restrictions.
type Gender string

const (
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderOther          Gender = "OTHER"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

// SocialCategory follows the government classification.
type SocialCategory string

const (
	SocialCategoryGeneral SocialCategory = "GENERAL"
	SocialCategoryOBC     SocialCategory = "OBC"
	SocialCategorySC      SocialCategory = "SC"
	SocialCategoryST      SocialCategory = "ST"
	SocialCategoryEWS     SocialCategory = "EWS"
)

// IndianState covers states and union territories.
type IndianState string

const (
	StateAndhraPradesh    IndianState = "ANDHRA_PRADESH"
	StateArunachalPradesh IndianState = "ARUNACHAL_PRADESH"
	StateAssam            IndianState = "ASSAM"
	StateBihar            IndianState = "BIHAR"
	StateChhattisgarh     IndianState = "CHHATTISGARH"
	StateGoa              IndianState = "GOA"
	StateGujarat          IndianState = "GUJARAT"
	StateHaryana          IndianState = "HARYANA"
	StateHimachalPradesh  IndianState = "HIMACHAL_PRADESH"
	StateJharkhand        IndianState = "JHARKHAND"
	StateKarnataka        IndianState = "KARNATAKA"
	StateKerala           IndianState = "KERALA"
	StateMadhyaPradesh    IndianState = "MADHYA_PRADESH"
	StateMaharashtra      IndianState = "MAHARASHTRA"
	StateManipur          IndianState = "MANIPUR"
	StateMeghalaya        IndianState = "MEGHALAYA"
	StateMizoram          IndianState = "MIZORAM"
	StateNagaland         IndianState = "NAGALAND"
	StateOdisha           IndianState = "ODISHA"
	StatePunjab           IndianState = "PUNJAB"
	StateRajasthan        IndianState = "RAJASTHAN"
	StateSikkim           IndianState = "SIKKIM"
	StateTamilNadu        IndianState = "TAMIL_NADU"
	StateTelangana        IndianState = "TELANGANA"
	StateTripura          IndianState = "TRIPURA"
	StateUttarPradesh     IndianState = "UTTAR_PRADESH"
	StateUttarakhand      IndianState = "UTTARAKHAND"
	StateWestBengal       IndianState = "WEST_BENGAL"

	// Union territories
	StateAndamanNicobar IndianState = "ANDAMAN_NICOBAR"
	StateChandigarh     IndianState = "CHANDIGARH"
	StateDNHDD          IndianState = "DADRA_NAGAR_HAVELI_DAMAN_DIU"
	StateDelhi          IndianState = "DELHI"
	StateJammuKashmir   IndianState = "JAMMU_KASHMIR"
	StateLadakh         IndianState = "LADAKH"
	StateLakshadweep    IndianState = "LAKSHADWEEP"
	StatePuducherry     IndianState = "PUDUCHERRY"
)

// EmploymentStatus of a user.
type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "EMPLOYED"
	EmploymentSelfEmployed EmploymentStatus = "SELF_EMPLOYED"
	EmploymentUnemployed   EmploymentStatus = "UNEMPLOYED"
	EmploymentStudent      EmploymentStatus = "STUDENT"
	EmploymentRetired      EmploymentStatus = "RETIRED"
	EmploymentHomemaker    EmploymentStatus = "HOMEMAKER"
)

// IsValid reports whether the employment status is a known value.
func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentEmployed, EmploymentSelfEmployed, EmploymentUnemployed,
		EmploymentStudent, EmploymentRetired, EmploymentHomemaker:
		return true
	}
	return false
}

// EducationLevel qualification levels.
type EducationLevel string

const (
	EducationNone               EducationLevel = "NO_FORMAL_EDUCATION"
	EducationPrimary            EducationLevel = "PRIMARY"
	EducationSecondary          EducationLevel = "SECONDARY"
	EducationHigherSecondary    EducationLevel = "HIGHER_SECONDARY"
	EducationUndergraduate      EducationLevel = "UNDERGRADUATE"
	EducationPostgraduate       EducationLevel = "POSTGRADUATE"
	EducationDoctorate          EducationLevel = "DOCTORATE"
	EducationDiploma            EducationLevel = "DIPLOMA"
	EducationProfessionalDegree EducationLevel = "PROFESSIONAL_DEGREE"
)

// MaritalStatus options.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "SINGLE"
	MaritalMarried  MaritalStatus = "MARRIED"
	MaritalDivorced MaritalStatus = "DIVORCED"
	MaritalWidowed  MaritalStatus = "WIDOWED"
)

// SchemeStatus of a scheme listing.
type SchemeStatus string

const (
	SchemeActive     SchemeStatus = "ACTIVE"
	SchemeInactive   SchemeStatus = "INACTIVE"
	SchemeExpired    SchemeStatus = "EXPIRED"
	SchemeComingSoon SchemeStatus = "COMING_SOON"
)

// SchemeLevel is the administrative level a scheme is run at.
type SchemeLevel string

const (
	LevelCentral   SchemeLevel = "CENTRAL"
	LevelState     SchemeLevel = "STATE"
	LevelDistrict  SchemeLevel = "DISTRICT"
	LevelPanchayat SchemeLevel = "PANCHAYAT"
)
