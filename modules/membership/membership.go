// Package membership is the typed client for the "membership" resource,
// composed on top of the generic gateway. It handles the backend's storage
// quirk of keeping nested blocks (countries, qualifications, work
// experience, references) as JSON-encoded strings inside the record.
package membership

import (
	"encoding/json"
	"fmt"
)

// Category is the membership grade.
type Category string

const (
	CategoryStudent            Category = "Student"
	CategoryGraduate           Category = "Graduate"
	CategoryAssociate          Category = "Associate"
	CategoryChartered          Category = "Chartered"
	CategoryFellowship         Category = "Fellowship"
	CategoryHonoraryFellowship Category = "Honorary Fellowship"
)

// Categories lists the valid membership grades in ascending order.
func Categories() []Category {
	return []Category{
		CategoryStudent,
		CategoryGraduate,
		CategoryAssociate,
		CategoryChartered,
		CategoryFellowship,
		CategoryHonoraryFellowship,
	}
}

// CountryInfo locates a member relative to a country: origin, residence
// or operation. State/LGA/zone only apply to Nigerian addresses.
type CountryInfo struct {
	Name             string `json:"name,omitempty"`
	GeopoliticalZone string `json:"geopoliticalZone,omitempty"`
	State            string `json:"state,omitempty"`
	LGA              string `json:"lga,omitempty"`
}

// Degree is one entry of the education qualification block.
type Degree struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// EducationQualification wraps the degree list the way the backend
// stores it.
type EducationQualification struct {
	Degrees []Degree `json:"degrees"`
}

// ProfessionalQualification is one professional certification entry.
type ProfessionalQualification struct {
	Title       string `json:"title,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// WorkExperience is one employment history entry.
type WorkExperience struct {
	Organization string `json:"organization,omitempty"`
	Position     string `json:"position,omitempty"`
	Year         string `json:"year,omitempty"`
}

// Reference is one referee entry.
type Reference struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Membership is a member record with the nested blocks decoded. The
// backend id can be numeric or string, so it is carried separately from
// the JSON mapping.
type Membership struct {
	ID                    string   `json:"-"`
	Title                 string   `json:"title,omitempty"`
	Name                  string   `json:"name,omitempty"`
	MembershipID          string   `json:"membershipID,omitempty"`
	MembershipCategory    Category `json:"membershipCategory,omitempty"`
	ProfessionalLicenseID string   `json:"professionalLicenseID,omitempty"`
	YearOfLicense         string   `json:"yearOfLicense,omitempty"`
	StampIDNumber         string   `json:"stampIDNumber,omitempty"`
	SealIDNumber          string   `json:"sealIDNumber,omitempty"`

	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	DOB           string `json:"dob,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`

	CountryOfOrigin    CountryInfo `json:"-"`
	CountryOfResidence CountryInfo `json:"-"`
	CountryOfOperation CountryInfo `json:"-"`

	EducationQualification     EducationQualification      `json:"-"`
	ProfessionalQualifications []ProfessionalQualification `json:"-"`
	WorkExperience             []WorkExperience            `json:"-"`
	References                 []Reference                 `json:"-"`

	PassportPhoto string `json:"passportPhoto,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// wireFields are the nested blocks the backend keeps as JSON strings.
type wireFields struct {
	CountryOfOrigin           string `json:"countryOfOrigin,omitempty"`
	CountryOfResidence        string `json:"countryOfResidence,omitempty"`
	CountryOfOperation        string `json:"countryOfOperation,omitempty"`
	EducationQualification    string `json:"educationQualification,omitempty"`
	ProfessionalQualification string `json:"professionalQualification,omitempty"`
	WorkExperience            string `json:"workExperience,omitempty"`
	References                string `json:"references,omitempty"`
}

// decode builds a Membership from a raw gateway record, tolerating
// missing or empty nested blocks.
func decode(record map[string]any) (*Membership, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	var m Membership
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if id, ok := record["id"]; ok && id != nil {
		m.ID = fmt.Sprint(id)
	}

	var wire wireFields
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}

	unpack(wire.CountryOfOrigin, &m.CountryOfOrigin)
	unpack(wire.CountryOfResidence, &m.CountryOfResidence)
	unpack(wire.CountryOfOperation, &m.CountryOfOperation)
	unpack(wire.EducationQualification, &m.EducationQualification)
	unpack(wire.ProfessionalQualification, &m.ProfessionalQualifications)
	unpack(wire.WorkExperience, &m.WorkExperience)
	unpack(wire.References, &m.References)

	return &m, nil
}

// encode renders a Membership into the flat variables map the backend
// expects, with nested blocks re-encoded as JSON strings. Server-owned
// fields (id, timestamps) are left out.
func (m *Membership) encode() (map[string]any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	variables := map[string]any{}
	if err := json.Unmarshal(raw, &variables); err != nil {
		return nil, err
	}
	delete(variables, "createdAt")
	delete(variables, "updatedAt")

	for field, value := range map[string]any{
		"countryOfOrigin":           m.CountryOfOrigin,
		"countryOfResidence":        m.CountryOfResidence,
		"countryOfOperation":        m.CountryOfOperation,
		"educationQualification":    m.EducationQualification,
		"professionalQualification": m.ProfessionalQualifications,
		"workExperience":            m.WorkExperience,
		"references":                m.References,
	} {
		packed, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		variables[field] = string(packed)
	}

	return variables, nil
}

// unpack decodes a JSON-string field, ignoring empty and malformed
// values so one bad block does not sink the whole record.
func unpack(raw string, dst any) {
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}
