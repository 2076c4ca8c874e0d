package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-insight-go/internal/extractor"
	"resume-insight-go/internal/parser"
)

// 定义提取命令的命令行参数
var (
	extractFormat   = flag.String("extract-format", "text", "输出格式，可选项：text, json")
	extractSaveFile = flag.String("extract-save", "", "保存提取结果到文件")
)

// 读取简历文本：优先PDF，其次纯文本文件
func loadResumeText(ctx context.Context) (string, error) {
	if *pdfFilePath != "" {
		absPath, err := filepath.Abs(*pdfFilePath)
		if err != nil {
			return "", fmt.Errorf("无法获取文件的绝对路径: %w", err)
		}
		if _, err := os.Stat(absPath); err != nil {
			return "", fmt.Errorf("无法访问文件 %s: %w", absPath, err)
		}

		pdfExtractor, err := parser.NewTextExtractor(ctx, "")
		if err != nil {
			return "", fmt.Errorf("创建PDF提取器失败: %w", err)
		}
		text, _, err := pdfExtractor.ExtractFromFile(ctx, absPath)
		if err != nil {
			return "", fmt.Errorf("PDF文本提取失败: %w", err)
		}
		return text, nil
	}

	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			return "", fmt.Errorf("读取文本文件失败: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("必须提供 -pdf 或 -text 参数")
}

// 处理简历字段提取命令
func handleExtractCommand() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := loadResumeText(ctx)
	if err != nil {
		fmt.Printf("错误: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	ext := extractor.New(nil, nil)
	record, warnings, err := ext.ExtractFromText(ctx, text)
	if err != nil {
		fmt.Printf("提取简历信息失败: %v\n", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "警告: %s\n", w)
	}

	var output string
	if *extractFormat == "json" {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			fmt.Printf("序列化结果失败: %v\n", err)
			os.Exit(1)
		}
		output = string(data)
	} else {
		output = fmt.Sprintf(
			"姓名: %s %s\n邮箱: %s\n电话: %s\n专业: %s\n技能: %v\n教育经历: %v\n经验级别: %s\n建议岗位: %s\n评分: %d\n",
			record.FirstName, record.LastName,
			record.Email, record.Phone, record.DegreeMajor,
			record.Skills, record.Education,
			record.Experience.Level, record.Experience.SuggestedPosition,
			record.Score,
		)
	}

	if *extractSaveFile != "" {
		if err := os.WriteFile(*extractSaveFile, []byte(output), 0644); err != nil {
			fmt.Printf("保存结果到文件失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("提取结果已保存到: %s\n", *extractSaveFile)
		return
	}

	fmt.Println(output)
}
