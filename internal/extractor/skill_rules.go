package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

//
// 技能校验规则引擎
//
// 几十条排除检查不再写成层层if，而是整理为一组有名字的谓词规则，
// 按固定优先级短路求值。每条规则可单独测试，新增规则不需要动控制流。
//

// skillRule 单条排除规则；Reject返回true表示候选词不是技能
type skillRule struct {
	Name   string
	Reject func(original, lower string) bool
}

// 短词白名单：长度不足3但属于公认缩写的技能
var shortSkillAllowlist = map[string]bool{
	"ai": true, "ui": true, "ux": true, "os": true, "db": true,
	"ml": true, "dl": true, "nlp": true, "api": true,
}

// 常见虚词与非技能单词
var skillStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "been": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "me": true, "him": true, "her": true, "us": true, "them": true,
	"admin": true, "present": true, "remote": true, "built": true, "conducted": true,
	"optimized": true, "resolved": true, "stored": true, "working": true,
	"other": true, "skills": true, "pre": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "oct": true, "nov": true, "dec": true,
	"learning": true, "certificate": true, "consultant": true, "inspection": true, "labs": true,
}

// 已知的非技能短语(章节标题、证书名、公司部门等)
var nonSkillPhrases = map[string]bool{
	"other skills": true, "technical skills": true, "core skills": true,
	"key skills": true, "professional skills": true,
	"linkedin learning": true, "online learning": true,
	"development certificate": true, "research consultant": true,
	"acg inspection": true, "data labs": true, "l4 cloud": true,
	"software developer": true, "software engineer": true,
}

// 受保护的复合术语：虽然以" learning"结尾或含敏感片段，但本身是真技能
var protectedSkillTerms = map[string]bool{
	"machine learning":       true,
	"deep learning":          true,
	"reinforcement learning": true,
}

// 非技能后缀
var nonSkillSuffixes = []string{
	" learning", " certificate", " consultant", " inspection",
	" labs", " developer", " engineer",
}

// 非法前缀：项目符号、标点、人名片段、邮箱残片
var invalidSkillPrefixes = []string{
	"•", "‚Ä¢", ":", "(", ")", "@", "+", "roushan", "kumar", "yadav", "gmail", "com",
}

// 城市名(带短横线时多为"地点-日期"残片)
var cityIndicators = []string{
	"bengaluru", "hyderabad", "mumbai", "delhi", "bangalore", "pune", "chennai",
	"kolkata", "ahmedabad", "jaipur", "lucknow", "kanpur", "nagpur", "indore",
	"thane", "bhopal", "visakhapatnam", "patna", "vadodara", "ghaziabad",
}

// 状态词(在职状态、工作形式)
var statusWords = map[string]bool{
	"present": true, "remote": true, "full-time": true, "part-time": true,
	"contract": true, "internship": true, "current": true,
	"-present": true, "-remote": true, "-full": true, "-part": true, "-current": true,
}

// 组织机构关键词片段
var orgPhraseFragments = []string{
	"national institute", "institute of technology", "university", "college", "institute",
}

// 知名大公司名(简历里出现多为履历而非技能)
var companyNames = []string{
	"microsoft", "google", "amazon", "goldman", "sachs", "apple", "meta", "facebook",
	"netflix", "uber", "airbnb", "tesla", "nvidia", "oracle", "ibm", "adobe",
}

var (
	digitRunPattern   = regexp.MustCompile(`\d{3,}`)
	yearPattern       = regexp.MustCompile(`\d{4}`)
	monthAbbrevExact  = regexp.MustCompile(`^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\.?$`)
	residualMonth     = regexp.MustCompile(`\b(nov|dec|jan|feb|mar|apr|may|jun|jul|aug|sep|oct)\.?\b`)
	residualCity      = regexp.MustCompile(`\b(bengaluru|hyderabad|mumbai|delhi|bangalore|pune)\b`)
	residualStatus    = regexp.MustCompile(`\b(present|remote|full-time|part-time)\b`)
	residualOrgPhrase = regexp.MustCompile(`\b(national institute|institute of technology|university|college)\b`)
)

// skillRules 排除规则表，按优先级排列，短路求值
var skillRules = []skillRule{
	{
		Name: "too_short",
		Reject: func(original, lower string) bool {
			return len(original) < 2
		},
	},
	{
		Name: "short_not_allowlisted",
		Reject: func(original, lower string) bool {
			return len(original) < 3 && !shortSkillAllowlist[lower]
		},
	},
	{
		Name: "stopword",
		Reject: func(original, lower string) bool {
			return skillStopwords[lower]
		},
	},
	{
		Name: "non_skill_phrase",
		Reject: func(original, lower string) bool {
			if protectedSkillTerms[lower] {
				return false
			}
			if nonSkillPhrases[lower] {
				return true
			}
			for _, phrase := range []string{"other skills", "technical skills", "core skills", "key skills"} {
				if strings.Contains(lower, phrase) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "non_skill_suffix",
		Reject: func(original, lower string) bool {
			if protectedSkillTerms[lower] {
				return false
			}
			for _, suffix := range nonSkillSuffixes {
				if strings.HasSuffix(lower, suffix) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "invalid_prefix",
		Reject: func(original, lower string) bool {
			for _, prefix := range invalidSkillPrefixes {
				if strings.HasPrefix(lower, prefix) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "dash_edge",
		Reject: func(original, lower string) bool {
			return strings.HasPrefix(original, "-") || strings.HasSuffix(original, "-")
		},
	},
	{
		Name: "email_fragment",
		Reject: func(original, lower string) bool {
			return strings.Contains(original, "@") ||
				strings.Contains(lower, ".com") ||
				strings.Contains(lower, ".in")
		},
	},
	{
		Name: "digit_run",
		Reject: func(original, lower string) bool {
			return digitRunPattern.MatchString(original)
		},
	},
	{
		Name: "numeric_only",
		Reject: func(original, lower string) bool {
			stripped := strings.NewReplacer("-", "", ".", "").Replace(original)
			if stripped == "" {
				return false
			}
			for _, r := range stripped {
				if !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
	},
	{
		Name: "year_pattern",
		Reject: func(original, lower string) bool {
			return yearPattern.MatchString(original)
		},
	},
	{
		Name: "month_abbrev",
		Reject: func(original, lower string) bool {
			return monthAbbrevExact.MatchString(lower) ||
				strings.HasPrefix(lower, "nov.") || strings.HasSuffix(lower, "nov.")
		},
	},
	{
		Name: "city_dash",
		Reject: func(original, lower string) bool {
			if !strings.Contains(original, "-") {
				return false
			}
			for _, city := range cityIndicators {
				if strings.Contains(lower, city) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "location",
		Reject: func(original, lower string) bool {
			for _, city := range cityIndicators {
				if lower == city || strings.Contains(lower, "-"+city) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "status_word",
		Reject: func(original, lower string) bool {
			if statusWords[lower] {
				return true
			}
			return strings.Contains(lower, "-present") || strings.Contains(lower, "-remote")
		},
	},
	{
		Name: "org_keyword",
		Reject: func(original, lower string) bool {
			for _, frag := range orgPhraseFragments {
				if strings.Contains(lower, frag) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "company_name",
		Reject: func(original, lower string) bool {
			for _, company := range companyNames {
				if strings.Contains(lower, company) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "alnum_ratio",
		Reject: func(original, lower string) bool {
			alnum := 0
			total := 0
			for _, r := range original {
				total++
				if unicode.IsLetter(r) || unicode.IsDigit(r) {
					alnum++
				}
			}
			// 字母数字占比低于60%的多为排版残片
			return total > 0 && float64(alnum) < float64(total)*0.6
		},
	},
	{
		Name: "no_letter",
		Reject: func(original, lower string) bool {
			for _, r := range original {
				if unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
	},
}

// IsValidSkill 判断候选词是否为有效技能
// 所有规则都不拒绝时才通过；对已通过的技能再次校验仍然通过(幂等)
func IsValidSkill(skill string) bool {
	return rejectedBy(skill) == ""
}

// rejectedBy 返回第一条拒绝该候选词的规则名，全部通过时返回空串
// 规则按表内顺序短路求值
func rejectedBy(skill string) string {
	original := strings.TrimSpace(skill)
	if original == "" {
		return "too_short"
	}
	lower := strings.ToLower(original)
	for _, rule := range skillRules {
		if rule.Reject(original, lower) {
			return rule.Name
		}
	}
	return ""
}

// CleanSkill 清理候选词边缘的项目符号/冒号/括号/短横线
// 清理结果需要重新走一遍校验(清理可能暴露新的无效形态)
func CleanSkill(skill string) string {
	cleaned := strings.TrimSpace(skill)
	cleaned = strings.Trim(cleaned, "-•:()")
	cleaned = strings.TrimLeft(cleaned, "-")
	return strings.TrimSpace(cleaned)
}

// residualReject 合并后的兜底复检
// 词表来源与模型来源各自的过滤都可能放过组合后才显形的边角情况，
// 这里用残余模式再筛一遍，命中即剔除
func residualReject(skill string) bool {
	lower := strings.ToLower(strings.TrimSpace(skill))

	if nonSkillPhrases[lower] || lower == "feature engineering" || lower == "model evaluation" {
		return true
	}

	// 含敏感片段且不在保护名单中的一律剔除
	for _, frag := range []string{"other skills", "technical skills", "learning", "certificate", "consultant", "inspection", "labs"} {
		if strings.Contains(lower, frag) && !protectedSkillTerms[lower] {
			return true
		}
	}

	if strings.HasPrefix(lower, "-") || strings.HasSuffix(lower, "-") {
		return true
	}
	return residualMonth.MatchString(lower) ||
		residualCity.MatchString(lower) ||
		residualStatus.MatchString(lower) ||
		residualOrgPhrase.MatchString(lower)
}
