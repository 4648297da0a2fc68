package dto

import (
	"fmt"
	"math"

	detailDto "gradus_backend/internals/features/courses/course_detail/dto"
	"gradus_backend/internals/features/progress/model"
)

type RecordProgressRequest struct {
	CourseSlug      string  `json:"courseSlug" validate:"required"`
	LectureID       string  `json:"lectureId" validate:"required"`
	CompletionRatio float64 `json:"completionRatio"`
}

// LearnerRollup is one learner's completion summary for a course.
type LearnerRollup struct {
	UserID    string  `json:"user_id"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Ratio     float64 `json:"ratio"`
	Percent   string  `json:"percent"`
}

// LectureRollup is one lecture's aggregate across learners who touched it.
type LectureRollup struct {
	LectureID         string  `json:"lecture_id"`
	LearnersSeen      int     `json:"learnersSeen"`
	Completed         int     `json:"completed"`
	AverageCompletion float64 `json:"averageCompletion"`
}

// ClampRatio bounds a completion ratio to [0, 1].
func ClampRatio(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Ratio divides completed by total, returning 0 for an empty course so
// the result is never NaN or Inf.
func Ratio(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// FormatPercent renders a ratio as a whole-number percentage string.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

// CountLectures walks a curriculum tree and counts every lecture.
func CountLectures(modules []detailDto.Module) int {
	total := 0
	for _, m := range modules {
		for _, s := range m.Sections {
			total += len(s.Lectures)
		}
	}
	return total
}

// RollupByLearner groups progress rows per learner against a fixed
// lecture total. A lecture counts as completed at ratio 1.
func RollupByLearner(rows []model.ProgressModel, totalLectures int) []LearnerRollup {
	index := make(map[string]int, len(rows))
	out := make([]LearnerRollup, 0, len(rows))
	for i := range rows {
		uid := rows[i].UserID.String()
		at, ok := index[uid]
		if !ok {
			at = len(out)
			index[uid] = at
			out = append(out, LearnerRollup{UserID: uid, Total: totalLectures})
		}
		if rows[i].CompletionRatio >= 1 {
			out[at].Completed++
		}
	}
	for i := range out {
		out[i].Ratio = Ratio(out[i].Completed, out[i].Total)
		out[i].Percent = FormatPercent(out[i].Ratio)
	}
	return out
}

// RollupByLecture groups progress rows per lecture: learners seen,
// completions, and the mean ratio across learners who touched it.
func RollupByLecture(rows []model.ProgressModel) []LectureRollup {
	index := make(map[string]int, len(rows))
	sums := make(map[string]float64, len(rows))
	out := make([]LectureRollup, 0, len(rows))
	for i := range rows {
		id := rows[i].LectureID
		at, ok := index[id]
		if !ok {
			at = len(out)
			index[id] = at
			out = append(out, LectureRollup{LectureID: id})
		}
		out[at].LearnersSeen++
		if rows[i].CompletionRatio >= 1 {
			out[at].Completed++
		}
		sums[id] += rows[i].CompletionRatio
	}
	for i := range out {
		out[i].AverageCompletion = sums[out[i].LectureID] / float64(out[i].LearnersSeen)
	}
	return out
}
