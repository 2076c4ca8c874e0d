package parser

import (
	"context"
	"io"
)

//
// PDF文本提取
//
// 核心提取管线只消费纯文本；PDF到文本的转换属于外部协作方职责，
// 这里提供两个可互换实现(eino解析器与ledongthuc逐页提取)，
// 由配置parser.type选择。与字段提取不同，这一层的失败是真正的错误。
//

// TextExtractor PDF文本提取接口
type TextExtractor interface {
	// ExtractFromFile 从PDF文件路径提取全文
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractFromReader 从io.Reader提取全文
	// uri仅用于日志与元数据标注
	ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error)
}
