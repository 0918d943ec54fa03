package engine

import "errors"

var (
	// ErrEmptyCatalog 目录中没有任何通路定义，排名无法进行
	ErrEmptyCatalog = errors.New("pathway catalog is empty")
	// ErrUnknownPathway 请求的通路不在目录中
	ErrUnknownPathway = errors.New("pathway not found in catalog")
	// ErrMalformedProfile 画像既无技能也无工作经历，应在入口处拒绝
	ErrMalformedProfile = errors.New("profile has no skills and no work history")
)
