package model

// Portfolio is everything the presentation layer needs to draw the page. Notices carries one inline
// message per failed source; the corresponding list then holds demo entries.
type Portfolio struct {
	Profile    *Profile          `json:"profile"`
	Projects   []*Project        `json:"projects"`
	Articles   []*ArticleCard    `json:"articles"`
	Notices    Notices           `json:"notices"`
	Preference DisplayPreference `json:"preference"`
}

type Notices struct {
	Projects string `json:"projects,omitempty"`
	Articles string `json:"articles,omitempty"`
}

func (x Notices) Empty() bool {
	return x.Projects == "" && x.Articles == ""
}
