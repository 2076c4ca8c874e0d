package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"resume-insight-go/internal/logger"
)

// LedongPDFTextExtractor 基于ledongthuc/pdf的逐页文本提取器
// 不依赖任何外部服务，作为eino解析器之外的轻量替代
type LedongPDFTextExtractor struct {
	log zerolog.Logger
}

// NewLedongPDFTextExtractor 创建逐页PDF提取器
func NewLedongPDFTextExtractor() *LedongPDFTextExtractor {
	return &LedongPDFTextExtractor{log: logger.With("pdf_ledong")}
}

// ExtractFromFile 实现TextExtractor接口
func (e *LedongPDFTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件失败 %s: %w", filePath, err)
	}
	defer file.Close()

	return e.ExtractFromReader(ctx, file, filePath)
}

// ExtractFromReader 读入全部内容后逐页提取纯文本并按原始页序拼接
func (e *LedongPDFTextExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	start := time.Now()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", nil, fmt.Errorf("读取PDF内容失败 (URI: %s): %w", uri, err)
	}

	pdfReader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return "", nil, fmt.Errorf("解析PDF失败 (URI: %s): %w", uri, err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// 单页提取失败跳过该页，保住其余页面的文本
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.log.Warn().Err(err).Str("uri", uri).Int("page", i).Msg("单页文本提取失败，已跳过")
			continue
		}
		textBuilder.WriteString(text)
	}

	metadata := map[string]interface{}{
		"source_uri":             uri,
		"page_count":             numPages,
		"text_length":            textBuilder.Len(),
		"processing_duration_ms": time.Since(start).Milliseconds(),
	}
	return textBuilder.String(), metadata, nil
}

// NewTextExtractor 按配置的解析器类型构造提取器
// 未知类型回退到eino实现
func NewTextExtractor(ctx context.Context, parserType string) (TextExtractor, error) {
	switch parserType {
	case "ledong":
		return NewLedongPDFTextExtractor(), nil
	default:
		return NewEinoPDFTextExtractor(ctx)
	}
}
