package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/rs/zerolog"

	"resume-insight-go/internal/logger"
)

// EinoPDFTextExtractor 使用Eino PDF Parser提取文本
type EinoPDFTextExtractor struct {
	parser  *pdf.PDFParser
	log     zerolog.Logger
	timeout time.Duration
}

// EinoPDFOption PDF提取器配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(l zerolog.Logger) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.log = l
	}
}

// WithEinoTimeout 配置单次解析的超时时间
func WithEinoTimeout(d time.Duration) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.timeout = d
	}
}

// NewEinoPDFTextExtractor 初始化Eino PDF文本提取器
// 配置为不按页面分割：提取核心需要整份文档的连续文本
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 重要：整个PDF的文本作为单个字符串返回
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser:  p,
		log:     logger.With("pdf_eino"),
		timeout: 30 * time.Second,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractFromFile 实现TextExtractor接口
func (e *EinoPDFTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	start := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件失败 %s: %w", filePath, err)
	}
	defer file.Close()

	text, metadata, err := e.ExtractFromReader(ctx, file, filePath)
	if err != nil {
		e.log.Error().Err(err).Str("path", filePath).Dur("elapsed", time.Since(start)).Msg("PDF处理失败")
		return "", nil, err
	}

	e.log.Info().Str("path", filePath).Int("chars", len(text)).Dur("elapsed", time.Since(start)).Msg("PDF处理完成")
	return text, metadata, nil
}

// ExtractFromReader 从io.Reader提取文本
func (e *EinoPDFTextExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	extraMeta := map[string]interface{}{
		"source_uri":      uri,
		"extraction_time": start.Format(time.RFC3339),
	}

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
		einoParser.WithExtraMeta(extraMeta),
	)
	if err != nil {
		return "", extraMeta, fmt.Errorf("eino解析PDF失败 (URI: %s): %w", uri, err)
	}
	if len(docs) == 0 {
		return "", extraMeta, fmt.Errorf("eino解析PDF无结果 (URI: %s)", uri)
	}

	// 合并全部文档内容(ToPages为false时通常只有一个)
	var fullContent string
	for i, doc := range docs {
		fullContent += doc.Content
		if i < len(docs)-1 {
			fullContent += "\n\n"
		}
	}

	metadata := make(map[string]interface{})
	if docs[0].MetaData != nil {
		for k, v := range docs[0].MetaData {
			metadata[k] = v
		}
	}
	for k, v := range extraMeta {
		metadata[k] = v
	}
	metadata["document_count"] = len(docs)
	metadata["text_length"] = len(fullContent)
	metadata["processing_duration_ms"] = time.Since(start).Milliseconds()

	return fullContent, metadata, nil
}
