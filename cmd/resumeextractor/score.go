package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-insight-go/internal/extractor"
)

// 处理完整度评分命令
func handleScoreCommand() {
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

	fmt.Printf("简历完整度评分: %d/100\n", record.Score)
	fmt.Printf("  姓名: %v\n", record.FirstName != "" && record.LastName != "")
	fmt.Printf("  邮箱: %v\n", record.Email != "")
	fmt.Printf("  专业: %v\n", record.DegreeMajor != "")
	fmt.Printf("  技能: %v\n", len(record.Skills) > 0)
}
