package extractor

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"resume-insight-go/internal/annotate"
	"resume-insight-go/internal/keywords"
	"resume-insight-go/internal/types"
)

//
// 技能提取管线
//
// 两条独立来源先各自过滤再合并：
//   1. 词表匹配(主来源，结果可信度高)：词表逐条在全文做整词匹配；
//   2. 模型匹配(次级来源，可缺失)：专用技能标注器产出的SKILL实体。
// 词表命中有权威性；模型命中仅在词表中不存在大小写不敏感重复时补充。
// 合并后再做一次残余模式复检：两条来源各自的过滤都可能放过
// 组合之后才出现的边角情况(例如大小写归一后才撞上的误报)。
//

// wordPatterns 整词匹配的已编译正则缓存
// 词表在进程生命周期内基本固定，每个keyword只编译一次
var wordPatterns sync.Map // keyword -> *regexp.Regexp

// wholeWordMatch 判断keyword是否以整词形式出现在text中(两者均应已小写)
func wholeWordMatch(text, keyword string) bool {
	if cached, ok := wordPatterns.Load(keyword); ok {
		return cached.(*regexp.Regexp).MatchString(text)
	}
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return false
	}
	wordPatterns.Store(keyword, pattern)
	return pattern.MatchString(text)
}

// vocabularySkills 词表来源：校验->清理->复验，保留词表原文写法
func vocabularySkills(doc *types.AnnotatedDocument, skills *keywords.KeywordSet) []string {
	if skills == nil {
		return nil
	}
	lowerText := strings.ToLower(doc.Text)

	var matched []string
	for _, entry := range skills.Entries() {
		keyword := strings.ToLower(strings.TrimSpace(entry))
		if len(keyword) < 2 {
			continue
		}
		if !wholeWordMatch(lowerText, keyword) {
			continue
		}
		if !IsValidSkill(entry) {
			continue
		}
		cleaned := CleanSkill(entry)
		if cleaned != "" && IsValidSkill(cleaned) {
			matched = append(matched, cleaned)
		}
	}
	return matched
}

// modelSkills 模型来源：SKILL实体经大小写归一后同样走校验->清理->复验
// 归一规则：首字母大写且长度>3时保留原文大小写(多为专有名词)，否则转小写
func modelSkills(ctx context.Context, annotator annotate.SkillAnnotator, text string) ([]string, error) {
	entities, err := annotator.AnnotateSkills(ctx, text)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, ent := range entities {
		if ent.Label != types.EntitySkill {
			continue
		}
		skill := strings.TrimSpace(ent.Text)
		if skill == "" {
			continue
		}
		if !(len(skill) > 3 && firstRuneUpper(skill)) {
			skill = strings.ToLower(skill)
		}
		if !IsValidSkill(skill) {
			continue
		}
		cleaned := CleanSkill(skill)
		if cleaned != "" && IsValidSkill(cleaned) {
			matched = append(matched, cleaned)
		}
	}
	return matched, nil
}

// mergeSkills 合并两条来源并做最终裁剪
// 输出去重、按大小写不敏感升序排列、截断到maxSkills
func mergeSkills(vocabMatched, modelMatched []string, maxSkills int) []string {
	combined := make([]string, 0, len(vocabMatched)+len(modelMatched))
	seen := make(map[string]bool)
	for _, s := range vocabMatched {
		lower := strings.ToLower(s)
		if !seen[lower] {
			seen[lower] = true
			combined = append(combined, s)
		}
	}
	// 模型命中只在词表未覆盖时补充，且需要再次独立通过校验
	for _, s := range modelMatched {
		lower := strings.ToLower(s)
		if seen[lower] {
			continue
		}
		if len(s) >= 3 && IsValidSkill(s) {
			seen[lower] = true
			combined = append(combined, s)
		}
	}

	// 兜底复检 + 幂等校验
	var final []string
	for _, s := range combined {
		if residualReject(s) {
			continue
		}
		if IsValidSkill(s) {
			final = append(final, s)
		}
	}

	sort.SliceStable(final, func(i, j int) bool {
		return strings.ToLower(final[i]) < strings.ToLower(final[j])
	})

	if maxSkills > 0 && len(final) > maxSkills {
		final = final[:maxSkills]
	}
	return final
}

// firstRuneUpper 首字符是否大写字母
func firstRuneUpper(s string) bool {
	for _, r := range s {
		return r >= 'A' && r <= 'Z'
	}
	return false
}
