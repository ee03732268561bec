package repository

import "errors"

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ErrInUse 记录仍被订单引用，不能删除
var ErrInUse = errors.New("record referenced by orders")
