package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrMissingIdentity 主机既没有IP也没有FQDN
var ErrMissingIdentity = errors.New("主机未配置IP和FQDN")

// ResolutionError FQDN解析失败
type ResolutionError struct {
	FQDN string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("FQDN解析失败 (%s): %v", e.FQDN, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Lookup DNS查询接口（便于测试时替换）
type Lookup interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Resolver 主机地址解析器
type Resolver struct {
	lookup Lookup
}

// New 创建解析器，使用系统DNS
func New() *Resolver {
	return &Resolver{lookup: net.DefaultResolver}
}

// NewWithLookup 创建解析器，使用指定的DNS查询实现
func NewWithLookup(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve 解析主机的有效IP地址
// 配置了IP时直接返回（FQDN仅用于展示）；否则对FQDN做正向DNS查询，
// 取第一个返回地址。解析失败只影响该主机自己的探测，不中断整个运行
func (r *Resolver) Resolve(ctx context.Context, ip, fqdn string) (string, error) {
	if ip != "" {
		return ip, nil
	}

	if fqdn == "" {
		return "", ErrMissingIdentity
	}

	addrs, err := r.lookup.LookupHost(ctx, fqdn)
	if err != nil {
		return "", &ResolutionError{FQDN: fqdn, Err: err}
	}
	if len(addrs) == 0 {
		return "", &ResolutionError{FQDN: fqdn, Err: errors.New("DNS查询未返回IP地址")}
	}

	// 使用第一个IP
	return addrs[0], nil
}
