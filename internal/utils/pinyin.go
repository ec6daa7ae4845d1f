package utils

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// SortNamesByPinyin 按姓名的拼音升序排序，用于导出时让单元格内的名单顺序稳定
func SortNamesByPinyin(names []string) {
	keys := make(map[string]string, len(names))
	for _, name := range names {
		keys[name] = strings.Join(pinyin.LazyConvert(name, nil), "")
	}
	sort.Slice(names, func(i, j int) bool {
		ki, kj := keys[names[i]], keys[names[j]]
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})
}
