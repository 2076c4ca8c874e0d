package extractor

import (
	"strings"
	"unicode"

	"resume-insight-go/internal/types"
)

// 实体识别常把机构名误标成人名，这些关键词用来剔除此类误报
var nameOrgKeywords = []string{
	"national", "institute", "technology", "university", "college", "school",
	"academy", "center", "centre", "foundation", "corporation", "company",
	"ltd", "limited", "inc", "llc", "pvt", "private",
}

// 常见的PERSON误报短语
var nameFalsePositives = map[string]bool{
	"machine learning":        true,
	"deep learning":           true,
	"data science":            true,
	"artificial intelligence": true,
	"software engineer":       true,
	"software developer":      true,
	"research consultant":     true,
}

// 含这些词的行不可能是姓名行(联系方式、章节标题等)
var nonNameLineWords = []string{
	"email", "phone", "address", "resume", "cv", "objective", "summary",
	"linkedin", "github", "portfolio", "website",
}

// 宽松回退阶段排除的首词
var nameHonorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"the": true, "national": true, "institute": true,
}

// 严格回退阶段排除的首词
var nameStrictExclusions = map[string]bool{
	"national": true, "institute": true, "university": true, "college": true,
	"the": true, "mr": true, "mrs": true, "ms": true, "dr": true,
}

// ExtractName 提取候选人姓名，返回(名, 姓)，找不到时两者均为空串
//
// 三级策略，命中即止：
//  1. PERSON实体(文档顺序优先，简历头部的名字排在最前)，剔除误报短语与机构名；
//  2. 原文前三个非空行中形如姓名的行；
//  3. 前五行的更严格扫描。
//
// 简历头部在结构上最可靠，但NER常把学校名标成人名，
// 逐级回退以牺牲精度换召回。
func ExtractName(doc *types.AnnotatedDocument) (string, string) {
	// 策略1：PERSON实体
	for _, ent := range doc.EntitiesByLabel(types.EntityPerson) {
		lower := strings.ToLower(ent.Text)
		if nameFalsePositives[lower] || containsAnyKeyword(lower, nameOrgKeywords) {
			continue
		}
		words := strings.Fields(ent.Text)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		valid := true
		for _, w := range words {
			if !isTitleCaseAlpha(w) {
				valid = false
				break
			}
		}
		if valid {
			return words[0], strings.Join(words[1:], " ")
		}
	}

	lines := nonEmptyLines(doc.Text, 15)

	// 策略2：前三个非空行的宽松扫描
	limit := 3
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if containsAnyKeyword(lower, nonNameLineWords) || containsAnyKeyword(lower, nameOrgKeywords) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 3 {
			continue
		}
		first := words[0]
		rest := words[1:]
		if !isTitleCaseAlpha(first) || len(first) < 2 || len(first) > 20 {
			continue
		}
		ok := true
		for _, w := range rest {
			if !isAlpha(w) || len(w) < 2 || len(w) > 20 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		last := strings.Join(rest, " ")
		if nameHonorifics[strings.ToLower(first)] || containsAnyKeyword(strings.ToLower(last), nameOrgKeywords) {
			continue
		}
		return first, last
	}

	// 策略3：前五行，取行首至多3个词，更严格的长度与排除约束
	limit = 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if containsAnyKeyword(strings.ToLower(line), nameOrgKeywords) {
			continue
		}
		words := strings.Fields(line)
		if len(words) > 3 {
			words = words[:3]
		}
		if len(words) < 2 {
			continue
		}
		first := words[0]
		rest := words[1:]
		if !isTitleCaseAlpha(first) || len(first) < 2 || len(first) > 15 {
			continue
		}
		ok := true
		for _, w := range rest {
			if !isAlpha(w) || len(w) < 2 || len(w) > 15 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		last := strings.Join(rest, " ")
		if nameStrictExclusions[strings.ToLower(first)] || containsAnyKeyword(strings.ToLower(last), nameOrgKeywords) {
			continue
		}
		return first, last
	}

	return "", ""
}

// nonEmptyLines 取原文前max个非空行(已去首尾空白)
func nonEmptyLines(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) >= max {
			break
		}
	}
	return out
}

// containsAnyKeyword 判断lower文本是否含任一关键词
func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isAlpha 全部为字母
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isTitleCaseAlpha 首字母大写且其余为小写字母("John"合法，"JOHN"/"john"不合法)
func isTitleCaseAlpha(s string) bool {
	if !isAlpha(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
