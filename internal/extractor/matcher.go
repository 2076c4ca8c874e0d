package extractor

import (
	"strings"

	"resume-insight-go/internal/types"
)

//
// 招聘方技能匹配
//
// 这是一条独立于技能提取管线的简单精确匹配路径：
// 招聘方给出必备技能清单，逐项在简历全文做整词匹配即可，
// 不需要技能校验规则引擎的任何排除逻辑。
//

// NormalizeRequired 规整调用方输入的必备技能：去空白、转小写、保序去重
func NormalizeRequired(required []string) []string {
	seen := make(map[string]bool, len(required))
	var out []string
	for _, skill := range required {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		out = append(out, skill)
	}
	return out
}

// MatchSkills 把必备技能划分为命中/未命中两组
//
// 不变式：Found与Missing不相交，且并集(按顺序)等于required；
// 两组内部均保持required的输入顺序。
// 命中率 = |Found|/|required|*100，required为空时定义为0而不是除零。
func MatchSkills(doc *types.AnnotatedDocument, required []string) types.SkillMatchResult {
	lowerText := strings.ToLower(doc.Text)

	result := types.SkillMatchResult{Required: required}
	for _, skill := range required {
		if wholeWordMatch(lowerText, strings.ToLower(skill)) {
			result.Found = append(result.Found, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	if len(required) > 0 {
		result.MatchRate = float64(len(result.Found)) / float64(len(required)) * 100
	}
	return result
}
