package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAliases(t *testing.T) {
	cases := map[string]string{
		"JS":                  "javascript",
		"  Golang ":           "go",
		"K8s":                 "kubernetes",
		"Node":                "node.js",
		"Postgres":            "postgresql",
		"Amazon Web Services": "aws",
		"CI   CD":             "ci/cd",
		"C#":                  "c#",
		"React.js.":           "react.js.",
	}
	for raw, want := range cases {
		assert.Equal(t, want, Normalize(raw), "raw=%q", raw)
	}
}

func TestNormalizeStripsPunctuationButKeepsTechChars(t *testing.T) {
	assert.Equal(t, "c++", Normalize("C++!"))
	assert.Equal(t, ".net", Normalize("dotnet"))
	assert.Equal(t, "node.js", Normalize("\"nodejs\""))
}

func TestMatchesSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"JS", "javascript"},
		{"react", "React Native"},
		{"docker", "Docker"},
		{"go", "golang"},
		{"python", "java"},
		{"", "docker"},
		{"sql", "postgresql"},
	}
	for _, p := range pairs {
		assert.Equal(t, Matches(p[0], p[1]), Matches(p[1], p[0]), "pair=%v", p)
	}
}

func TestMatchesSubstringNeedsFourChars(t *testing.T) {
	// go ⊂ django，但短于 4 个字符的包含不算匹配
	assert.False(t, Matches("go", "django"))
	assert.True(t, Matches("java", "javascript"))
	assert.True(t, Matches("kubernetes", "k8s"))
}

func TestContainsSkill(t *testing.T) {
	skills := []Skill{{Name: "Python"}, {Name: "k8s"}}
	assert.True(t, ContainsSkill(skills, "python"))
	assert.True(t, ContainsSkill(skills, "Kubernetes"))
	assert.False(t, ContainsSkill(skills, "terraform"))
}

func TestInferCategory(t *testing.T) {
	assert.Equal(t, "frontend", InferCategory("React"))
	assert.Equal(t, "devops", InferCategory("Terraform"))
	assert.Equal(t, "data", InferCategory("pytorch"))
	assert.Equal(t, "general", InferCategory("public speaking"))
}
