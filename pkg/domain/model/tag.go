package model

import (
	"regexp"
	"slices"
	"strings"

	"github.com/rahulpawar166/folio/pkg/domain/types"
)

// MaxTags is the number of tags kept per project.
const MaxTags = 5

// TagScope selects which text of a repository a TagRule pattern is evaluated against. All text is
// lower-cased before matching.
type TagScope int

const (
	InDescription TagScope = 1 << iota
	InName
	// InNameAndDescription matches against name + " " + description
	InNameAndDescription
)

// TagRule appends Tag when Pattern matches one of the scoped texts, or when the repository language
// equals Language.
type TagRule struct {
	Tag      string
	Pattern  *regexp.Regexp
	Scope    TagScope
	Language types.Language
}

func (x TagRule) match(name, desc string, lang types.Language) bool {
	if x.Language != "" && x.Language == lang {
		return true
	}
	if x.Pattern == nil {
		return false
	}
	if x.Scope&InDescription != 0 && x.Pattern.MatchString(desc) {
		return true
	}
	if x.Scope&InName != 0 && x.Pattern.MatchString(name) {
		return true
	}
	if x.Scope&InNameAndDescription != 0 && x.Pattern.MatchString(name+" "+desc) {
		return true
	}
	return false
}

// TagOverride forces tags for a repository whose lower-cased name equals Name.
type TagOverride struct {
	Name   string
	Add    []string
	Remove []string
}

// DefaultTagRules lists framework hints first, then platform hints. Order is kept in the output.
var DefaultTagRules = []TagRule{
	{Tag: "SwiftUI", Pattern: regexp.MustCompile(`swiftui`), Scope: InDescription | InName},
	{Tag: "Combine", Pattern: regexp.MustCompile(`combine\b`), Scope: InDescription},
	{Tag: "Swift Concurrency", Pattern: regexp.MustCompile(`concurrency|async\b|await\b`), Scope: InDescription},
	{Tag: "Kotlin", Pattern: regexp.MustCompile(`kotlin`), Scope: InDescription | InName},
	{Tag: "React", Pattern: regexp.MustCompile(`react\b|reactjs|react\.js`), Scope: InDescription},
	{Tag: "React", Pattern: regexp.MustCompile(`react`), Scope: InName},
	{Tag: "Node", Pattern: regexp.MustCompile(`node\b|express\b`), Scope: InDescription},
	{Tag: "Firebase", Pattern: regexp.MustCompile(`firebase`), Scope: InDescription},

	{Tag: "iOS", Pattern: regexp.MustCompile(`\bios\b|iphone|ipad`), Scope: InNameAndDescription},
	{Tag: "macOS", Pattern: regexp.MustCompile(`swiftui|appkit|macos|mac\s?app`), Scope: InNameAndDescription},
	{Tag: "Android", Pattern: regexp.MustCompile(`android`), Scope: InNameAndDescription, Language: "Kotlin"},
	{Tag: "Web", Pattern: regexp.MustCompile(`react|web|browser|vite|next\.js|nextjs`), Scope: InNameAndDescription},
}

// DefaultTagOverrides holds per-project corrections.
var DefaultTagOverrides = []TagOverride{
	{Name: "restsync", Add: []string{"macOS"}, Remove: []string{"iOS"}},
}

// Tagger infers display tags from a repository name, description and language.
type Tagger struct {
	rules     []TagRule
	overrides []TagOverride
	max       int
}

// NewTagger builds a tagger from an ordered rule table and per-name overrides.
func NewTagger(rules []TagRule, overrides []TagOverride) *Tagger {
	return &Tagger{
		rules:     rules,
		overrides: overrides,
		max:       MaxTags,
	}
}

// DefaultTagger uses DefaultTagRules and DefaultTagOverrides.
func DefaultTagger() *Tagger {
	return NewTagger(DefaultTagRules, DefaultTagOverrides)
}

// Infer returns at most MaxTags unique tags: the language first, then every matching rule in table
// order. Overrides apply after the cap, so an added tag is always kept.
func (x *Tagger) Infer(repo *Repository) []string {
	name := strings.ToLower(string(repo.Name))
	desc := strings.ToLower(repo.Description)

	var tags []string
	if repo.Language != "" {
		tags = append(tags, string(repo.Language))
	}

	for _, rule := range x.rules {
		if rule.match(name, desc, repo.Language) {
			tags = append(tags, rule.Tag)
		}
	}

	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !slices.Contains(unique, tag) {
			unique = append(unique, tag)
		}
	}
	if len(unique) > x.max {
		unique = unique[:x.max]
	}

	for _, ovr := range x.overrides {
		if ovr.Name != name {
			continue
		}
		unique = ovr.apply(unique, x.max)
	}
	return unique
}

// apply removes the Remove tags, then adds the missing Add tags, dropping tags from the end to stay
// within limit.
func (x TagOverride) apply(tags []string, limit int) []string {
	tags = slices.DeleteFunc(tags, func(tag string) bool {
		return slices.Contains(x.Remove, tag)
	})

	var missing []string
	for _, tag := range x.Add {
		if !slices.Contains(tags, tag) && !slices.Contains(missing, tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > limit {
		missing = missing[:limit]
	}
	if keep := limit - len(missing); len(tags) > keep {
		tags = tags[:keep]
	}
	return append(tags, missing...)
}
