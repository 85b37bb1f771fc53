package errors

import "errors"

// ErrNotOwner 权限校验失败：调用者不是目标餐厅的所有者
// 所有写操作在执行前都会经过统一的所有权守卫，命中即返回该错误
var ErrNotOwner = errors.New("无权操作该餐厅")
