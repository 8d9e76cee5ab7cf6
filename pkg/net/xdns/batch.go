package xdns

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// QueryAll 对一批名字并发执行同类型查询，返回 名字 → 响应 的映射。
//
// limit 是并发上限，非正值按 4 处理。单个名字的解析失败照常编码在
// 其 [Response] 里；只有调用级错误（如记录类型不支持）会中止整批
// 并透传，此时已完成的结果同样丢弃。
//
// 名字去重后查询：同一名字只查一次。
func QueryAll(ctx context.Context, r Resolver, names []string, qtype RecordType, limit int) (map[string][]Response, error) {
	if limit <= 0 {
		limit = 4
	}

	seen := make(map[string]struct{}, len(names))
	results := make(map[string][]Response, len(names))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		g.Go(func() error {
			resp, err := r.Query(ctx, name, qtype)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = resp
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
