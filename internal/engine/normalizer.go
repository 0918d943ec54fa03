package engine

import (
	"strings"
	"unicode"
)

// skillAliases 同义词/缩写归一表，键和值都已是规范形式
// 表是追加式数据，新别名直接加行即可
var skillAliases = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"golang":     "go",
	"k8s":        "kubernetes",
	"reactjs":    "react",
	"react js":   "react",
	"vuejs":      "vue",
	"vue js":     "vue",
	"angularjs":  "angular",
	"nodejs":     "node.js",
	"node":       "node.js",
	"nextjs":     "next.js",
	"nestjs":     "nest.js",
	"postgres":   "postgresql",
	"py":         "python",
	"dotnet":     ".net",
	"csharp":     "c#",
	"springboot": "spring boot",
	"html5":      "html",
	"css3":       "css",
	"scss":       "sass",

	"amazon web services":    "aws",
	"google cloud":           "gcp",
	"google cloud platform":  "gcp",
	"microsoft azure":        "azure",
	"ci cd":                  "ci/cd",
	"cicd":                   "ci/cd",
	"continuous integration": "ci/cd",
	"ml":                     "machine learning",
	"rest":                   "rest api",
	"restful api":            "rest api",
	"objective c":            "objective-c",
}

// Normalize 将原始技能字符串折叠为规范形式：小写、压缩空白、
// 去掉首尾标点，再查一次别名表。
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) && r != '#' && r != '+' && r != '.'
	})
	if canonical, ok := skillAliases[s]; ok {
		return canonical
	}
	return s
}

// Matches reports whether two raw skill strings refer to the same skill.
// Symmetric by construction: equality, alias co-membership, or substring
// containment in either direction once both sides are canonical and at
// least 4 characters. Deliberately permissive — resumes are inconsistent,
// and false positives are damped by the multi-signal scoring, not here.
func Matches(a, b string) bool {
	ca, cb := Normalize(a), Normalize(b)
	if ca == "" || cb == "" {
		return false
	}
	if ca == cb {
		return true
	}
	if len(ca) >= 4 && len(cb) >= 4 {
		if strings.Contains(ca, cb) || strings.Contains(cb, ca) {
			return true
		}
	}
	return false
}

// ContainsSkill 判断技能列表中是否有与 target 匹配的条目
func ContainsSkill(skills []Skill, target string) bool {
	for _, s := range skills {
		if Matches(s.Name, target) {
			return true
		}
	}
	return false
}

// titleCase 输出给用户看的技能名：每个词首字母大写，别名展开后再处理
func titleCase(canonical string) string {
	words := strings.Fields(canonical)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
