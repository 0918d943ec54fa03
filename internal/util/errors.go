package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidPassword      = errors.New("invalid email or password")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCVNotFound           = errors.New("cv not found")
	ErrMalformedCV          = errors.New("cv has no skills and no work history")
	ErrPathwayNotFound      = errors.New("pathway not found")
	ErrCatalogUnavailable   = errors.New("pathway catalog unavailable")
	ErrLearnedSkillNotFound = errors.New("learned skill not found")
)
