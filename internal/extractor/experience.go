package extractor

import (
	"strings"

	"resume-insight-go/internal/keywords"
	"resume-insight-go/internal/types"
)

// 经验层级触发动词，按层级优先从高到低检查
var (
	seniorVerbs    = []string{"lead", "manage", "direct", "oversee", "supervise", "orchestrate", "govern"}
	midSeniorVerbs = []string{"develop", "design", "analyze", "implement", "coordinate", "execute", "strategize"}
	midJuniorVerbs = []string{"assist", "support", "collaborate", "participate", "aid", "facilitate", "contribute"}
)

// ClassifyExperience 根据动词词汇推断经验层级并给出建议岗位
//
// 层级判定对动词表面形式做精确成员比较，刻意不做小写归一：
// 这是沿袭下来的可观测行为(非句首的动词因大小写差异可能永不命中，
// 疑似未修复的缺陷)，修改它会改变分级结果，需要另行评审，勿顺手"修正"。
// 岗位建议则先将动词小写，再按词表加载顺序取首个关键词命中的岗位。
func ClassifyExperience(doc *types.AnnotatedDocument, positions []keywords.PositionEntry) types.Experience {
	verbs := doc.Verbs()

	level := types.LevelEntry
	switch {
	case anyVerbIn(verbs, seniorVerbs):
		level = types.LevelSenior
	case anyVerbIn(verbs, midSeniorVerbs):
		level = types.LevelMidSenior
	case anyVerbIn(verbs, midJuniorVerbs):
		level = types.LevelMidJunior
	}

	return types.Experience{
		Level:             level,
		SuggestedPosition: suggestPosition(verbs, positions),
	}
}

// anyVerbIn 判断verbs中是否存在任一keyword(精确比较、区分大小写)
func anyVerbIn(verbs []string, keywordList []string) bool {
	set := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		set[v] = true
	}
	for _, kw := range keywordList {
		if set[kw] {
			return true
		}
	}
	return false
}

// suggestPosition 按加载顺序返回首个关键词命中的岗位
// 不做跨岗位打分；无命中时返回占位值
func suggestPosition(verbs []string, positions []keywords.PositionEntry) string {
	lowered := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		lowered[strings.ToLower(v)] = true
	}
	for _, pos := range positions {
		for _, kw := range pos.Keywords {
			if lowered[kw] {
				return pos.Title
			}
		}
	}
	return types.PositionNotIdentified
}
