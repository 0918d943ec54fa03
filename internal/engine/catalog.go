package engine

import (
	"fmt"
	"strings"
)

// Pathway 职业通路定义，目录数据，运行期只读
type Pathway struct {
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	Description      string             `json:"description"`
	RequiredSkills   []string           `json:"requiredSkills"`
	OptionalSkills   []string           `json:"optionalSkills"`
	WeightCategories map[string]float64 `json:"weightCategories"`
	RoadmapURL       string             `json:"roadmapUrl"`
}

// Catalog 一次评分调用可见的全部通路。按值注入、不共享可变状态，
// 热更新时由加载方整体替换。
type Catalog struct {
	Version  string    `json:"version"`
	Pathways []Pathway `json:"pathways"`
}

// Len returns the number of pathway definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Pathways)
}

// FindByName 大小写不敏感查找，未命中返回 ErrUnknownPathway
func (c *Catalog) FindByName(name string) (*Pathway, error) {
	if c != nil {
		target := strings.ToLower(strings.TrimSpace(name))
		for i := range c.Pathways {
			if strings.ToLower(c.Pathways[i].Name) == target {
				return &c.Pathways[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPathway, name)
}

// Validate 返回数据质量警告。空必选技能集或必选/可选重叠都不是
// 致命错误（评分端已兜底），但应该由加载方记日志并推动修数据。
func (c *Catalog) Validate() []string {
	var warnings []string
	seen := make(map[string]bool, c.Len())
	for _, p := range c.Pathways {
		key := strings.ToLower(p.Name)
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("duplicate pathway name %q", p.Name))
		}
		seen[key] = true

		if len(p.RequiredSkills) == 0 {
			warnings = append(warnings, fmt.Sprintf("pathway %q has no required skills, skill score will be 0", p.Name))
		}

		required := make(map[string]bool, len(p.RequiredSkills))
		for _, s := range p.RequiredSkills {
			required[Normalize(s)] = true
		}
		for _, s := range p.OptionalSkills {
			if required[Normalize(s)] {
				warnings = append(warnings, fmt.Sprintf("pathway %q lists %q as both required and optional", p.Name, s))
			}
		}
	}
	return warnings
}
