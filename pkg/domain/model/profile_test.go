package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/model"
)

func TestExperienceCoverCandidates(t *testing.T) {
	testCases := map[string]struct {
		cover string
		want  []string
	}{
		"png": {
			cover: "/images/eulerity.png",
			want:  []string{"/images/eulerity.png", "/images/eulerity.jpg", model.FallbackCover},
		},
		"jpg": {
			cover: "/images/seva.jpg",
			want:  []string{"/images/seva.jpg", "/images/seva.jpeg", model.FallbackCover},
		},
		"other extension": {
			cover: "/images/cover.webp",
			want:  []string{"/images/cover.webp", model.FallbackCover},
		},
		"no cover": {
			cover: "",
			want:  []string{model.FallbackCover},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			exp := model.Experience{Cover: tc.cover}
			gt.V(t, exp.CoverCandidates()).Equal(tc.want)
		})
	}
}

func TestDisplayPreference(t *testing.T) {
	dark := model.NewDisplayPreference("dark")
	gt.True(t, dark.IsDark)
	gt.V(t, dark.Theme()).Equal("dark")
	gt.V(t, dark.Toggle().Theme()).Equal("light")
	gt.V(t, dark.Toggle().Toggle()).Equal(dark)

	gt.False(t, model.NewDisplayPreference("light").IsDark)
	gt.False(t, model.NewDisplayPreference("unknown").IsDark)
}

func TestExperienceMarshalJSON(t *testing.T) {
	exp := model.Experience{Role: "iOS Developer", Cover: "/images/eulerity.png"}
	data := gt.R1(json.Marshal(exp)).NoError(t)

	var decoded struct {
		Role            string   `json:"role"`
		Cover           string   `json:"cover"`
		CoverCandidates []string `json:"cover_candidates"`
	}
	gt.NoError(t, json.Unmarshal(data, &decoded))
	gt.V(t, decoded.Role).Equal("iOS Developer")
	gt.V(t, decoded.Cover).Equal("/images/eulerity.png")
	gt.V(t, decoded.CoverCandidates).Equal([]string{"/images/eulerity.png", "/images/eulerity.jpg", model.FallbackCover})
}
