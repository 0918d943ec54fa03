// 通路目录校验脚本
//
// 服务启动与热更新时也会做同样的校验，但只记警告不阻断。
// 此脚本用于改目录数据后在提交前人工把关。
//
// 用法: go run scripts/validate_catalog.go [目录文件路径]
package main

import (
	"career_compass_backend/internal/engine"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

func main() {
	path := "configs/career_pathways.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("无法读取目录文件: %v", err)
	}

	var catalog engine.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatalf("解析目录文件失败: %v", err)
	}

	if catalog.Len() == 0 {
		log.Fatalf("目录为空: %s", path)
	}

	warnings := catalog.Validate()
	for _, w := range warnings {
		fmt.Println("WARNING:", w)
	}

	fmt.Printf("catalog %s: %d pathways, %d warnings\n", catalog.Version, catalog.Len(), len(warnings))
	if len(warnings) > 0 {
		os.Exit(1)
	}
}
