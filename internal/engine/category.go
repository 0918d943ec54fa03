package engine

import "strings"

// 技能分类与经历相关性都查这一张表，改分类只需要改数据。
// 顺序即优先级：一个关键词可能出现在多个域里时取排在前面的。
type categoryRule struct {
	Category string
	Keywords []string
}

var categoryTable = []categoryRule{
	{Category: "frontend", Keywords: []string{
		"javascript", "typescript", "html", "css", "react", "vue", "angular",
		"svelte", "next.js", "nuxt", "sass", "tailwind", "bootstrap", "webpack",
		"vite", "responsive design", "ui/ux", "web design", "frontend", "front-end",
	}},
	{Category: "backend", Keywords: []string{
		"python", "java", "c#", "ruby", "php", "go", "rust", "node.js", "scala",
		"django", "flask", "fastapi", "spring", "express", "rails", "laravel",
		".net", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
		"rest api", "graphql", "grpc", "microservices", "backend", "back-end",
		"server-side", "distributed systems",
	}},
	{Category: "devops", Keywords: []string{
		"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
		"terraform", "ansible", "aws", "azure", "gcp", "heroku", "prometheus",
		"grafana", "ci/cd", "infrastructure as code", "containerization", "linux",
		"devops", "sre", "site reliability", "cloud", "platform engineer",
	}},
	{Category: "data", Keywords: []string{
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"spark", "hadoop", "airflow", "kafka", "tableau", "power bi",
		"machine learning", "deep learning", "data analysis", "data science",
		"statistics", "big data", "etl", "nlp", "computer vision", "data scientist",
		"data analyst", "analytics",
	}},
	{Category: "mobile", Keywords: []string{
		"swift", "objective-c", "kotlin", "dart", "react native", "flutter",
		"ionic", "swiftui", "android", "ios", "xcode", "jetpack compose",
		"mobile app", "mobile engineer",
	}},
	{Category: "security", Keywords: []string{
		"security", "cybersecurity", "infosec", "penetration testing",
		"pentesting", "vulnerability", "incident response", "soc", "cissp",
	}},
	{Category: "general", Keywords: []string{
		"git", "github", "gitlab", "agile", "scrum", "kanban", "tdd",
		"leadership", "project management", "communication", "jest", "pytest",
		"junit", "selenium", "cypress", "unit testing", "integration testing",
	}},
}

// techCategories 视为技术域的分类，公司背景加成只对这些通路生效
var techCategories = map[string]bool{
	"frontend": true,
	"backend":  true,
	"devops":   true,
	"data":     true,
	"mobile":   true,
	"security": true,
}

// InferCategory 按表归类单个技能名，没有命中返回 general
func InferCategory(skillName string) string {
	canonical := Normalize(skillName)
	for _, rule := range categoryTable {
		for _, kw := range rule.Keywords {
			if canonical == kw {
				return rule.Category
			}
		}
	}
	for _, rule := range categoryTable {
		for _, kw := range rule.Keywords {
			if len(kw) >= 4 && strings.Contains(canonical, kw) {
				return rule.Category
			}
		}
	}
	return "general"
}

// CategoryCounts 统计画像技能落在各域的数量；技能自带分类优先，
// 缺失时按表推断。
func CategoryCounts(skills []Skill) map[string]int {
	counts := make(map[string]int, len(categoryTable))
	for _, s := range skills {
		category := strings.ToLower(strings.TrimSpace(s.Category))
		if category == "" {
			category = InferCategory(s.Name)
		}
		counts[category]++
	}
	return counts
}

// categoryKeywords 通路域 → 经历文本关键词，经历相关性打分专用
func categoryKeywords(category string) []string {
	c := strings.ToLower(category)
	for _, rule := range categoryTable {
		if rule.Category == c {
			return rule.Keywords
		}
	}
	return nil
}

// IsTechCategory reports whether a pathway category counts as technical.
func IsTechCategory(category string) bool {
	return techCategories[strings.ToLower(category)]
}
