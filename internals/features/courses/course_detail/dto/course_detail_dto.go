package dto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Module variants.
const (
	VariantDefault  = "default"
	VariantCapstone = "capstone"
)

// VideoMeta is filled only by the lecture upload endpoint, never typed
// in by hand.
type VideoMeta struct {
	URL       string  `json:"url"`
	PublicID  string  `json:"publicId"`
	Folder    string  `json:"folder"`
	AssetType string  `json:"assetType"`
	Duration  float64 `json:"duration"`
	Bytes     int64   `json:"bytes"`
	Format    string  `json:"format"`
}

type Lecture struct {
	LectureID   string    `json:"lectureId"`
	Title       string    `json:"title"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Video       VideoMeta `json:"video"`
}

type Section struct {
	SectionID   string    `json:"sectionId"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Summary     string    `json:"summary"`
	Lectures    []Lecture `json:"lectures"`
	Assignments []string  `json:"assignments"`
	Quizzes     []string  `json:"quizzes"`
	Projects    []string  `json:"projects"`
	Outcomes    []string  `json:"outcomes"`
	Notes       []string  `json:"notes"`
}

type Capstone struct {
	Summary      string   `json:"summary"`
	Deliverables []string `json:"deliverables"`
	Rubric       []string `json:"rubric"`
}

type Module struct {
	ModuleID      string    `json:"moduleId"`
	Order         int       `json:"order"`
	ModuleLabel   string    `json:"moduleLabel"`
	Title         string    `json:"title"`
	WeeksLabel    string    `json:"weeksLabel"`
	Summary       string    `json:"summary"`
	TopicsCovered []string  `json:"topicsCovered"`
	Outcomes      []string  `json:"outcomes"`
	Variant       string    `json:"variant"`
	Sections      []Section `json:"sections"`
	Resources     []string  `json:"resources"`
	Capstone      Capstone  `json:"capstone"`
}

type UpsertDetailRequest struct {
	Modules []Module `json:"modules"`
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func ensureID(id string) string {
	if t := strings.TrimSpace(id); t != "" {
		return t
	}
	return uuid.NewString()
}

func normalizeLecture(l Lecture, fallbackTitle string) Lecture {
	l.LectureID = ensureID(l.LectureID)
	l.Title = strings.TrimSpace(l.Title)
	if l.Title == "" {
		l.Title = strings.TrimSpace(fallbackTitle)
	}
	if l.Title == "" {
		l.Title = "Lecture"
	}
	l.Duration = strings.TrimSpace(l.Duration)
	l.Description = strings.TrimSpace(l.Description)
	l.Type = strings.TrimSpace(l.Type)
	if l.Video.URL != "" && l.Video.AssetType == "" {
		l.Video.AssetType = "video"
	}
	return l
}

func normalizeSection(s Section, sectionIndex int) Section {
	s.SectionID = ensureID(s.SectionID)
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		s.Title = fmt.Sprintf("Week %d", sectionIndex+1)
	}
	s.Subtitle = strings.TrimSpace(s.Subtitle)
	s.Summary = strings.TrimSpace(s.Summary)

	for i := range s.Lectures {
		s.Lectures[i] = normalizeLecture(s.Lectures[i], fmt.Sprintf("Lecture %d.%d", sectionIndex+1, i+1))
	}
	// A section never persists with zero lectures.
	if len(s.Lectures) == 0 {
		s.Lectures = []Lecture{normalizeLecture(Lecture{}, fmt.Sprintf("Lecture %d.1", sectionIndex+1))}
	}

	s.Assignments = cleanList(s.Assignments)
	s.Quizzes = cleanList(s.Quizzes)
	s.Projects = cleanList(s.Projects)
	s.Outcomes = cleanList(s.Outcomes)
	s.Notes = cleanList(s.Notes)
	return s
}

func normalizeModule(m Module, index int) Module {
	m.ModuleID = ensureID(m.ModuleID)
	m.ModuleLabel = strings.TrimSpace(m.ModuleLabel)
	if m.ModuleLabel == "" {
		m.ModuleLabel = fmt.Sprintf("Module %d", index+1)
	}
	m.Title = strings.TrimSpace(m.Title)
	m.WeeksLabel = strings.TrimSpace(m.WeeksLabel)
	m.Summary = strings.TrimSpace(m.Summary)
	m.TopicsCovered = cleanList(m.TopicsCovered)
	m.Outcomes = cleanList(m.Outcomes)
	if m.Variant != VariantCapstone {
		m.Variant = VariantDefault
	}

	for i := range m.Sections {
		m.Sections[i] = normalizeSection(m.Sections[i], i)
	}
	// A module never persists with zero sections.
	if len(m.Sections) == 0 {
		m.Sections = []Section{normalizeSection(Section{}, 0)}
	}

	m.Resources = cleanList(m.Resources)
	m.Capstone.Summary = strings.TrimSpace(m.Capstone.Summary)
	m.Capstone.Deliverables = cleanList(m.Capstone.Deliverables)
	m.Capstone.Rubric = cleanList(m.Capstone.Rubric)
	return m
}

// NormalizeModules prepares an incoming tree for persistence: ids are
// generated where absent, fallback labels filled, the tree sorted by the
// incoming order and then reindexed 0-based contiguous, and every module
// is guaranteed at least one section with at least one lecture.
func NormalizeModules(in []Module) []Module {
	out := make([]Module, len(in))
	for i, m := range in {
		out[i] = normalizeModule(m, i)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	for i := range out {
		out[i].Order = i
	}
	return out
}

// DefaultModules builds the single-module placeholder tree served when a
// course has no stored detail yet.
func DefaultModules(courseName string) []Module {
	m := Module{Title: strings.TrimSpace(courseName)}
	return NormalizeModules([]Module{m})
}
