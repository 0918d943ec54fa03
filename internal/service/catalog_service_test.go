package service

import (
	"os"
	"path/filepath"
	"testing"

	"career_compass_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `{
  "version": "test-1",
  "pathways": [
    {
      "name": "Backend Developer",
      "category": "backend",
      "description": "Server-side services and APIs.",
      "requiredSkills": ["python", "sql", "rest api", "git"],
      "optionalSkills": ["docker", "redis"],
      "weightCategories": {"backend": 0.8, "general": 0.2},
      "roadmapUrl": "https://roadmap.sh/backend"
    },
    {
      "name": "DevOps Engineer",
      "category": "devops",
      "description": "Build and deployment automation.",
      "requiredSkills": ["docker", "kubernetes", "ci/cd", "terraform"],
      "optionalSkills": ["python", "aws"],
      "weightCategories": {"devops": 0.7, "backend": 0.3},
      "roadmapUrl": "https://roadmap.sh/devops"
    }
  ]
}`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "career_pathways.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCatalogService(t *testing.T) {
	path := writeCatalogFile(t, testCatalogJSON)

	svc, err := NewCatalogService(path)
	require.NoError(t, err)

	snapshot := svc.Snapshot()
	assert.Equal(t, "test-1", snapshot.Version)
	assert.Equal(t, 2, snapshot.Len())
	assert.Len(t, svc.ListPathways(), 2)
}

func TestNewCatalogServiceMissingFile(t *testing.T) {
	_, err := NewCatalogService(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestCatalogServiceFindPathway(t *testing.T) {
	svc, err := NewCatalogService(writeCatalogFile(t, testCatalogJSON))
	require.NoError(t, err)

	// 大小写不敏感
	p, err := svc.FindPathway("backend developer")
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", p.Name)

	_, err = svc.FindPathway("Astronaut")
	assert.ErrorIs(t, err, util.ErrPathwayNotFound)
}

func TestCatalogServiceReloadReplacesSnapshot(t *testing.T) {
	path := writeCatalogFile(t, testCatalogJSON)
	svc, err := NewCatalogService(path)
	require.NoError(t, err)

	updated := `{"version": "test-2", "pathways": [
	  {"name": "Data Analyst", "category": "data", "description": "Reports.",
	   "requiredSkills": ["sql", "excel"], "optionalSkills": [],
	   "weightCategories": {"data": 1.0}, "roadmapUrl": "https://roadmap.sh/data-analyst"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	require.NoError(t, svc.Reload())
	snapshot := svc.Snapshot()
	assert.Equal(t, "test-2", snapshot.Version)
	assert.Equal(t, 1, snapshot.Len())
}

func TestCatalogServiceReloadKeepsOldOnBadFile(t *testing.T) {
	path := writeCatalogFile(t, testCatalogJSON)
	svc, err := NewCatalogService(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Error(t, svc.Reload())
	// 坏文件不影响已加载的快照
	snapshot := svc.Snapshot()
	assert.Equal(t, "test-1", snapshot.Version)
	assert.Equal(t, 2, snapshot.Len())
}
