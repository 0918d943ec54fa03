package service

import (
	"career_compass_backend/internal/engine"
	"career_compass_backend/internal/util"
	"career_compass_backend/pkg/logger"
	"career_compass_backend/pkg/monitoring"
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"
)

// CatalogService 负责通路目录的加载与热更新。引擎始终拿到的是
// 整体快照，替换是原子的，评分中途不会看到半新半旧的目录。
type CatalogService struct {
	path string

	mu      sync.RWMutex
	catalog engine.Catalog
}

func NewCatalogService(path string) (*CatalogService, error) {
	s := &CatalogService{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload 重新读取目录文件并整体替换。数据质量问题只记警告，
// 不阻断加载；文件坏了保留旧目录继续服务。
func (s *CatalogService) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		monitoring.CatalogReloads.WithLabelValues("error").Inc()
		return err
	}

	var catalog engine.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		monitoring.CatalogReloads.WithLabelValues("error").Inc()
		return err
	}
	monitoring.CatalogReloads.WithLabelValues("ok").Inc()

	for _, warning := range catalog.Validate() {
		logger.Log.Warn("通路目录数据质量警告", zap.String("warning", warning))
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	logger.Log.Info("通路目录已加载",
		zap.String("path", s.path),
		zap.String("version", catalog.Version),
		zap.Int("pathways", catalog.Len()))
	return nil
}

// Snapshot 当前目录的只读快照，按值传入引擎
func (s *CatalogService) Snapshot() engine.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// FindPathway 查单条通路，未命中映射为业务 404
func (s *CatalogService) FindPathway(name string) (*engine.Pathway, error) {
	catalog := s.Snapshot()
	p, err := catalog.FindByName(name)
	if err != nil {
		return nil, util.ErrPathwayNotFound
	}
	return p, nil
}

// ListPathways 全部通路定义，目录浏览接口用
func (s *CatalogService) ListPathways() []engine.Pathway {
	return s.Snapshot().Pathways
}
