package models

import (
	"slices"
	"strings"
)

type ProjectType string

const (
	ProjectCodex     ProjectType = "Codex"
	ProjectBulkTrade ProjectType = "Bulk Trade"
)

// ProjectTypes lists the fixed projects in display order.
var ProjectTypes = []ProjectType{ProjectCodex, ProjectBulkTrade}

type Project struct {
	Type        ProjectType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	KeyFeatures []string    `json:"key_features"`
	Docs        string      `json:"docs"`
	Links       []string    `json:"links"`
	ImageURLs   []string    `json:"image_urls"`
}

var projects = map[ProjectType]Project{
	ProjectCodex: {
		Type:        ProjectCodex,
		Name:        "Codex",
		Description: "An advanced AI-integrated developer workspace designed for seamless pair programming and automated legacy code migration.",
		KeyFeatures: []string{
			"Real-time AI logic suggestions",
			"Automated Documentation Generator",
			"Legacy-to-Modern Migration Tooling",
			"Secure Sandbox Execution",
		},
		Docs: `Codex Documentation V2.1:
Our architecture focuses on the 'Syntactic Transformer' which allows developers to map entire repositories for structural analysis.
The goal is to reduce technical debt by 40% in the first quarter of deployment.
Current release focuses on TypeScript, Rust, and Go support.`,
		Links:     []string{"https://codex.dev", "https://github.com/codex-hq/core"},
		ImageURLs: []string{"https://picsum.photos/seed/codex1/800/600", "https://picsum.photos/seed/codex2/800/600"},
	},
	ProjectBulkTrade: {
		Type:        ProjectBulkTrade,
		Name:        "Bulk Trade",
		Description: "The premier institutional liquidity aggregator for large-scale digital asset swaps with zero price impact.",
		KeyFeatures: []string{
			"Deep Liquidity Pools",
			"Atomic Swap Integration",
			"Zero-Slippage Algorithm",
			"Multi-Chain Institutional Custody",
		},
		Docs: `Bulk Trade Protocol Whitepaper Summary:
The protocol utilizes Batch Auctioning to mitigate front-running and MEV extraction.
By pooling institutional orders, we create a 'Dark Pool' environment that guarantees execution at the mid-market rate.`,
		Links:     []string{"https://bulktrade.finance", "https://docs.bulktrade.finance"},
		ImageURLs: []string{"https://picsum.photos/seed/trade1/800/600", "https://picsum.photos/seed/trade2/800/600"},
	},
}

// GetProject returns a copy of the project so callers cannot mutate the
// shared definitions.
func GetProject(t ProjectType) (Project, bool) {
	p, ok := projects[t]
	if !ok {
		return Project{}, false
	}
	p.KeyFeatures = slices.Clone(p.KeyFeatures)
	p.Links = slices.Clone(p.Links)
	p.ImageURLs = slices.Clone(p.ImageURLs)
	return p, true
}

func AllProjects() []Project {
	list := make([]Project, 0, len(ProjectTypes))
	for _, t := range ProjectTypes {
		p, _ := GetProject(t)
		list = append(list, p)
	}
	return list
}

// ParseProjectType accepts the display name in any case, with spaces,
// dashes or underscores between words ("bulk_trade", "Bulk-Trade").
func ParseProjectType(raw string) (ProjectType, bool) {
	normalize := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.NewReplacer("_", " ", "-", " ").Replace(s)
	}
	want := normalize(raw)
	for _, t := range ProjectTypes {
		if normalize(string(t)) == want {
			return t, true
		}
	}
	return "", false
}
