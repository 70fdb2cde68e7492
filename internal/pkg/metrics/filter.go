package metrics

import "Pulseboard/internal/model"

// Selection 多选过滤条件
// 零值表示未指定（取全部观测值），Only 构造的是显式集合，空集合即不匹配任何行
type Selection struct {
	explicit bool
	values   []string
	set      map[string]struct{}
}

// All 未指定，等价于选中全部观测值
func All() Selection {
	return Selection{}
}

// Only 显式选择，可以为空
func Only(values ...string) Selection {
	s := Selection{explicit: true, set: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if _, ok := s.set[v]; ok {
			continue
		}
		s.set[v] = struct{}{}
		s.values = append(s.values, v)
	}
	return s
}

func (s Selection) IsAll() bool {
	return !s.explicit
}

func (s Selection) Contains(v string) bool {
	if !s.explicit {
		return true
	}
	_, ok := s.set[v]
	return ok
}

// Values 显式选择的值；未指定时为 nil
func (s Selection) Values() []string {
	return s.values
}

// Resolve 把未指定的选择展开为观测值集合
func (s Selection) Resolve(observed []string) Selection {
	if s.explicit {
		return s
	}
	return Only(observed...)
}

// Filter 看板的过滤状态
type Filter struct {
	Platforms Selection
	Niches    Selection
	Brands    Selection
	Products  Selection
}

// FilterInfluencers 保留 platform ∈ platforms 且 niche ∈ niches 的达人
func FilterInfluencers(influencers []model.Influencer, platforms, niches Selection) []model.Influencer {
	out := make([]model.Influencer, 0, len(influencers))
	for _, inf := range influencers {
		if platforms.Contains(inf.Platform) && niches.Contains(inf.Niche) {
			out = append(out, inf)
		}
	}
	return out
}

// unique 去重并保持首次出现的顺序
func unique[T any](rows []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
