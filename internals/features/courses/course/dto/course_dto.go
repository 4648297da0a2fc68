package dto

import "strings"

// Structured blocks stored as JSONB on the course row.

type Week struct {
	Title  string   `json:"title"`
	Hours  string   `json:"hours"`
	Points []string `json:"points"`
}

type Partner struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
}

type Certification struct {
	Level           string   `json:"level"`
	CertificateName string   `json:"certificateName"`
	Coverage        []string `json:"coverage"`
	Outcome         string   `json:"outcome"`
}

type CourseRequest struct {
	Name      string `json:"name" validate:"required"`
	Slug      string `json:"slug"`
	Programme string `json:"programme"`

	Subtitle       string `json:"subtitle"`
	Focus          string `json:"focus"`
	Level          string `json:"level"`
	Duration       string `json:"duration"`
	Mode           string `json:"mode"`
	Price          string `json:"price"`
	PriceINR       *int64 `json:"priceINR"`
	PlacementRange string `json:"placementRange"`
	OutcomeSummary string `json:"outcomeSummary"`
	FinalAward     string `json:"finalAward"`

	Effort        string `json:"effort"`
	Language      string `json:"language"`
	Prerequisites string `json:"prerequisites"`

	Approvals       []string `json:"approvals"`
	Skills          []string `json:"skills"`
	Deliverables    []string `json:"deliverables"`
	Outcomes        []string `json:"outcomes"`
	CapstonePoints  []string `json:"capstonePoints"`
	CareerOutcomes  []string `json:"careerOutcomes"`
	ToolsFrameworks []string `json:"toolsFrameworks"`

	Weeks          []Week          `json:"weeks"`
	Partners       []Partner       `json:"partners"`
	Certifications []Certification `json:"certifications"`

	ImageURL      string `json:"imageUrl"`
	ImageAlt      string `json:"imageAlt"`
	ImagePublicID string `json:"imagePublicId"`

	AssessmentMaxAttempts *int `json:"assessmentMaxAttempts"`
	Order                 *int `json:"order"`
}

// NormalizeStringArray trims entries and drops empties.
func NormalizeStringArray(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeWeeks keeps weeks that carry a title or at least one point.
func NormalizeWeeks(in []Week) []Week {
	out := make([]Week, 0, len(in))
	for _, w := range in {
		w.Title = strings.TrimSpace(w.Title)
		w.Hours = strings.TrimSpace(w.Hours)
		w.Points = NormalizeStringArray(w.Points)
		if w.Title != "" || len(w.Points) > 0 {
			out = append(out, w)
		}
	}
	return out
}

// NormalizePartners drops entries with no content at all.
func NormalizePartners(in []Partner) []Partner {
	out := make([]Partner, 0, len(in))
	for _, p := range in {
		p.Name = strings.TrimSpace(p.Name)
		p.Logo = strings.TrimSpace(p.Logo)
		p.Website = strings.TrimSpace(p.Website)
		if p.Name != "" || p.Logo != "" || p.Website != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeCertifications drops fully empty entries.
func NormalizeCertifications(in []Certification) []Certification {
	out := make([]Certification, 0, len(in))
	for _, cert := range in {
		cert.Level = strings.TrimSpace(cert.Level)
		cert.CertificateName = strings.TrimSpace(cert.CertificateName)
		cert.Coverage = NormalizeStringArray(cert.Coverage)
		cert.Outcome = strings.TrimSpace(cert.Outcome)
		if cert.Level != "" || cert.CertificateName != "" || len(cert.Coverage) > 0 || cert.Outcome != "" {
			out = append(out, cert)
		}
	}
	return out
}
