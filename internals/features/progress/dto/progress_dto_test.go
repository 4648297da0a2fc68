package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	detailDto "gradus_backend/internals/features/courses/course_detail/dto"
	"gradus_backend/internals/features/progress/model"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(0, 0))
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.Equal(t, 0.75, Ratio(3, 4))
	assert.Equal(t, 1.0, Ratio(4, 4))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "75%", FormatPercent(0.75))
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "100%", FormatPercent(1))
	assert.Equal(t, "33%", FormatPercent(1.0/3.0))
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, ClampRatio(-0.5))
	assert.Equal(t, 1.0, ClampRatio(1.5))
	assert.Equal(t, 0.4, ClampRatio(0.4))
}

func TestCountLectures(t *testing.T) {
	modules := detailDto.NormalizeModules([]detailDto.Module{
		{Sections: []detailDto.Section{
			{Lectures: []detailDto.Lecture{{Title: "a"}, {Title: "b"}}},
			{Lectures: []detailDto.Lecture{{Title: "c"}}},
		}},
		{},
	})
	// 3 explicit plus 1 placeholder from the empty module
	assert.Equal(t, 4, CountLectures(modules))
	assert.Equal(t, 0, CountLectures(nil))
}

func TestRollupByLearner(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	rows := []model.ProgressModel{
		{UserID: u1, LectureID: "l1", CompletionRatio: 1},
		{UserID: u1, LectureID: "l2", CompletionRatio: 1},
		{UserID: u1, LectureID: "l3", CompletionRatio: 1},
		{UserID: u1, LectureID: "l4", CompletionRatio: 0.2},
		{UserID: u2, LectureID: "l1", CompletionRatio: 0.5},
	}
	out := RollupByLearner(rows, 4)
	require.Len(t, out, 2)

	assert.Equal(t, u1.String(), out[0].UserID)
	assert.Equal(t, 3, out[0].Completed)
	assert.Equal(t, 4, out[0].Total)
	assert.Equal(t, 0.75, out[0].Ratio)
	assert.Equal(t, "75%", out[0].Percent)

	assert.Equal(t, 0, out[1].Completed)
	assert.Equal(t, 0.0, out[1].Ratio)
}

func TestRollupByLearnerZeroTotal(t *testing.T) {
	rows := []model.ProgressModel{{UserID: uuid.New(), LectureID: "l1", CompletionRatio: 1}}
	out := RollupByLearner(rows, 0)
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].Ratio)
	assert.Equal(t, "0%", out[0].Percent)
}

func TestRollupByLecture(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	rows := []model.ProgressModel{
		{UserID: u1, LectureID: "l1", CompletionRatio: 1},
		{UserID: u2, LectureID: "l1", CompletionRatio: 0.5},
		{UserID: u1, LectureID: "l2", CompletionRatio: 0.25},
	}
	out := RollupByLecture(rows)
	require.Len(t, out, 2)

	assert.Equal(t, "l1", out[0].LectureID)
	assert.Equal(t, 2, out[0].LearnersSeen)
	assert.Equal(t, 1, out[0].Completed)
	assert.Equal(t, 0.75, out[0].AverageCompletion)

	assert.Equal(t, 1, out[1].LearnersSeen)
	assert.Equal(t, 0, out[1].Completed)
	assert.Equal(t, 0.25, out[1].AverageCompletion)
}
