package model

import (
	"encoding/json"
	"strings"

	"github.com/rahulpawar166/folio/pkg/domain/types"
)

// FallbackCover is a neutral gradient used when no experience cover image can be loaded.
const FallbackCover = "data:image/svg+xml;utf8," +
	"<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 1600 700'>" +
	"<defs><linearGradient id='g' x1='0' x2='1' y1='0' y2='1'>" +
	"<stop offset='0%' stop-color='%23d4d4d4'/>" +
	"<stop offset='100%' stop-color='%23909090'/>" +
	"</linearGradient></defs>" +
	"<rect width='100%' height='100%' fill='url(%23g)'/>" +
	"</svg>"

type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

type Experience struct {
	Role      string   `json:"role" yaml:"role"`
	Company   string   `json:"company" yaml:"company"`
	Period    string   `json:"period" yaml:"period"`
	Cover     string   `json:"cover,omitempty" yaml:"cover"`
	Sentences []string `json:"sentences" yaml:"sentences"`
}

// CoverCandidates returns the image sources to try in order. The last one is always FallbackCover.
func (x *Experience) CoverCandidates() []string {
	var candidates []string
	if x.Cover != "" {
		candidates = append(candidates, x.Cover)
	}
	if strings.HasSuffix(x.Cover, ".png") {
		candidates = append(candidates, strings.TrimSuffix(x.Cover, ".png")+".jpg")
	}
	if strings.HasSuffix(x.Cover, ".jpg") {
		candidates = append(candidates, strings.TrimSuffix(x.Cover, ".jpg")+".jpeg")
	}
	return append(candidates, FallbackCover)
}

// MarshalJSON adds the cover candidates so that a client can walk the fallback chain.
func (x Experience) MarshalJSON() ([]byte, error) {
	type raw Experience
	return json.Marshal(struct {
		raw
		CoverCandidates []string `json:"cover_candidates"`
	}{
		raw:             raw(x),
		CoverCandidates: x.CoverCandidates(),
	})
}

type SkillGroup struct {
	Group string   `json:"group" yaml:"group"`
	Items []string `json:"items" yaml:"items"`
}

// Profile is the static part of the portfolio.
type Profile struct {
	Name         string             `json:"name" yaml:"name"`
	Headline     string             `json:"headline" yaml:"headline"`
	Avatar       string             `json:"avatar,omitempty" yaml:"avatar"`
	Cover        string             `json:"cover,omitempty" yaml:"cover"`
	Links        []Link             `json:"links,omitempty" yaml:"links"`
	Phone        string             `json:"phone,omitempty" yaml:"phone"`
	ContactEmail types.EmailAddress `json:"contact_email" yaml:"contact_email"`
	Experience   []Experience       `json:"experience" yaml:"experience"`
	Skills       []SkillGroup       `json:"skills" yaml:"skills"`
}
