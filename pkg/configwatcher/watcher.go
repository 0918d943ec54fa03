package configwatcher

import (
	"career_compass_backend/pkg/logger"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchFile 监听单个文件的写入事件，防抖后调用 onChange。
// 目录热更新（career_pathways.json）走这里；onChange 失败只记日志，
// 旧数据继续服务。
func WatchFile(path string, onChange func() error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("Failed to create file watcher:", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("Failed to get absolute path:", err)
	}

	// 监听目录而非文件本身，编辑器原子替换时 inode 会变
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		log.Fatal("Failed to watch file:", err)
	}

	var mu sync.Mutex
	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// 防抖处理
				mu.Lock()
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(1 * time.Second)
				mu.Unlock()
			}
		case <-timer.C:
			if err := onChange(); err != nil {
				logger.Log.Error("Failed to reload watched file", zap.String("path", absPath), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("File watcher error", zap.Error(err))
		}
	}
}
