package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeModulesReindexesOrder(t *testing.T) {
	in := []Module{
		{Order: 7, Title: "Advanced"},
		{Order: 2, Title: "Basics"},
		{Order: 5, Title: "Middle"},
	}
	out := NormalizeModules(in)

	require.Len(t, out, 3)
	assert.Equal(t, "Basics", out[0].Title)
	assert.Equal(t, "Middle", out[1].Title)
	assert.Equal(t, "Advanced", out[2].Title)
	for i, m := range out {
		assert.Equal(t, i, m.Order)
	}
}

func TestNormalizeModulesGuaranteesChildren(t *testing.T) {
	out := NormalizeModules([]Module{{Title: "Empty"}})

	require.Len(t, out, 1)
	require.Len(t, out[0].Sections, 1)
	require.Len(t, out[0].Sections[0].Lectures, 1)
	assert.Equal(t, "Week 1", out[0].Sections[0].Title)
	assert.Equal(t, "Lecture 1.1", out[0].Sections[0].Lectures[0].Title)

	// Empty sections inside a provided list are filled too.
	out = NormalizeModules([]Module{{
		Sections: []Section{{Title: "Intro"}, {}},
	}})
	require.Len(t, out[0].Sections, 2)
	assert.Equal(t, "Intro", out[0].Sections[0].Title)
	assert.Equal(t, "Week 2", out[0].Sections[1].Title)
	for _, s := range out[0].Sections {
		assert.NotEmpty(t, s.Lectures)
	}
}

func TestNormalizeModulesGeneratesIDsAndLabels(t *testing.T) {
	out := NormalizeModules([]Module{
		{ModuleID: "keep-me", Variant: "capstone"},
		{},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "keep-me", out[0].ModuleID)
	assert.NotEmpty(t, out[1].ModuleID)
	assert.NotEqual(t, out[0].ModuleID, out[1].ModuleID)
	assert.Equal(t, "Module 1", out[0].ModuleLabel)
	assert.Equal(t, "Module 2", out[1].ModuleLabel)
	assert.Equal(t, VariantCapstone, out[0].Variant)
	assert.Equal(t, VariantDefault, out[1].Variant)
}

func TestNormalizeModulesIdempotent(t *testing.T) {
	first := NormalizeModules([]Module{
		{Order: 3, Title: "B", Sections: []Section{{Lectures: []Lecture{{Title: "L"}}}}},
		{Order: 1, Title: "A"},
	})
	second := NormalizeModules(first)
	assert.Equal(t, first, second)
}

func TestVideoAssetTypeDefaultsWhenURLSet(t *testing.T) {
	out := NormalizeModules([]Module{{
		Sections: []Section{{
			Lectures: []Lecture{{Video: VideoMeta{URL: "https://cdn/x.mp4"}}},
		}},
	}})
	assert.Equal(t, "video", out[0].Sections[0].Lectures[0].Video.AssetType)
}

func TestDefaultModules(t *testing.T) {
	out := DefaultModules("Data Science 101")
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Order)
	assert.Equal(t, "Data Science 101", out[0].Title)
	require.Len(t, out[0].Sections, 1)
	require.Len(t, out[0].Sections[0].Lectures, 1)
}
