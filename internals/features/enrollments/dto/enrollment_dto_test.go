package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradus_backend/internals/features/enrollments/model"
)

func TestSummarizeByCourse(t *testing.T) {
	rows := []model.EnrollmentModel{
		{CourseSlug: "course-a", PaymentStatus: model.PaymentPaid},
		{CourseSlug: "course-a", PaymentStatus: model.PaymentPending},
		{CourseSlug: "course-b", PaymentStatus: model.PaymentPaid},
	}

	out := SummarizeByCourse(rows)
	require.Len(t, out, 2)

	assert.Equal(t, "course-a", out[0].CourseSlug)
	assert.Equal(t, 2, out[0].TotalEnrollments)
	assert.Equal(t, 1, out[0].PaidEnrollments)

	assert.Equal(t, "course-b", out[1].CourseSlug)
	assert.Equal(t, 1, out[1].TotalEnrollments)
	assert.Equal(t, 1, out[1].PaidEnrollments)
}

func TestSummarizeByCourseEmpty(t *testing.T) {
	assert.Empty(t, SummarizeByCourse(nil))
}

func TestSummarizeByCourseCountsOnlyPaid(t *testing.T) {
	rows := []model.EnrollmentModel{
		{CourseSlug: "c", PaymentStatus: model.PaymentFailed},
		{CourseSlug: "c", PaymentStatus: model.PaymentRefunded},
		{CourseSlug: "c", PaymentStatus: model.PaymentPending},
	}
	out := SummarizeByCourse(rows)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].TotalEnrollments)
	assert.Equal(t, 0, out[0].PaidEnrollments)
}
