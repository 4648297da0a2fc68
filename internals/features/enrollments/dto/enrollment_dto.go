package dto

import "gradus_backend/internals/features/enrollments/model"

type CheckoutRequest struct {
	CourseSlug string `json:"courseSlug" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type CheckoutResponse struct {
	EnrollmentID string `json:"enrollment_id"`
	OrderID      string `json:"order_id"`
	SnapToken    string `json:"snap_token"`
	RedirectURL  string `json:"redirect_url"`
	PriceTotal   int64  `json:"price_total"`
}

// CourseSummary is one row of the grouped dashboard view.
type CourseSummary struct {
	CourseSlug       string `json:"course_slug"`
	TotalEnrollments int    `json:"totalEnrollments"`
	PaidEnrollments  int    `json:"paidEnrollments"`
}

// SummarizeByCourse groups enrollments per course, counting paid rows
// separately. Row order follows first appearance, which keeps the
// dashboard stable across refreshes of the same result set.
func SummarizeByCourse(rows []model.EnrollmentModel) []CourseSummary {
	index := make(map[string]int, len(rows))
	out := make([]CourseSummary, 0, len(rows))
	for i := range rows {
		slug := rows[i].CourseSlug
		at, ok := index[slug]
		if !ok {
			at = len(out)
			index[slug] = at
			out = append(out, CourseSummary{CourseSlug: slug})
		}
		out[at].TotalEnrollments++
		if rows[i].PaymentStatus == model.PaymentPaid {
			out[at].PaidEnrollments++
		}
	}
	return out
}
