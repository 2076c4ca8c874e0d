package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-insight-go/internal/types"
)

// TestExtractEmail 取首个EMAIL实体
func TestExtractEmail(t *testing.T) {
	doc := &types.AnnotatedDocument{
		Text: "john.smith@example.com backup@example.org",
		Entities: []types.Entity{
			{Label: types.EntityEmail, Text: "john.smith@example.com", Start: 0, End: 22},
			{Label: types.EntityEmail, Text: "backup@example.org", Start: 23, End: 41},
		},
	}

	assert.Equal(t, "john.smith@example.com", ExtractEmail(doc), "应取首个EMAIL实体")
}

// TestExtractEmailNotFound 无EMAIL实体时返回空串
func TestExtractEmailNotFound(t *testing.T) {
	doc := &types.AnnotatedDocument{
		Text: "no contact info here",
		Entities: []types.Entity{
			{Label: types.EntityPerson, Text: "John Smith"},
		},
	}

	assert.Empty(t, ExtractEmail(doc), "没有EMAIL实体时应返回空串")
}

// TestExtractPhoneFormats 各种常见电话格式
func TestExtractPhoneFormats(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Call me at 123-456-7890 anytime", "123-456-7890"},
		{"Phone: 555-123-4567", "555-123-4567"},
		{"Mobile 555.123.4567", "555.123.4567"},
		{"Contact: 1 555 123 4567", "1 555 123 4567"},
		{"5551234567", "5551234567"},
	}
	for _, tc := range cases {
		doc := &types.AnnotatedDocument{Text: tc.text}
		assert.Equal(t, tc.want, ExtractPhone(doc), "文本 %q 的电话提取结果与预期不符", tc.text)
	}
}

// TestExtractPhoneIgnoresLongDigitRuns 长数字串(证件号、账号)不应被切出一段当作电话
func TestExtractPhoneIgnoresLongDigitRuns(t *testing.T) {
	cases := []string{
		"Aadhaar: 12345678901234",
		"Account 987654321098765 active",
	}
	for _, text := range cases {
		doc := &types.AnnotatedDocument{Text: text}
		assert.Equal(t, types.PhoneNotFound, ExtractPhone(doc), "文本 %q 不应命中电话", text)
	}
}

// TestExtractPhoneNotFound 未命中时返回占位值
func TestExtractPhoneNotFound(t *testing.T) {
	doc := &types.AnnotatedDocument{Text: "email only: someone@example.com"}

	assert.Equal(t, types.PhoneNotFound, ExtractPhone(doc), "未命中电话时应返回占位值")
}
