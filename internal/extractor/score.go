package extractor

import "resume-insight-go/internal/types"

// CalculateScore 计算简历完整度评分
// 四个字段组各25分，纯加法无部分计分，结果必然落在{0,25,50,75,100}
func CalculateScore(record *types.ResumeRecord) int {
	score := 0
	if record.FirstName != "" && record.LastName != "" {
		score += 25
	}
	if record.Email != "" {
		score += 25
	}
	if record.DegreeMajor != "" {
		score += 25
	}
	if len(record.Skills) > 0 {
		score += 25
	}
	return score
}
