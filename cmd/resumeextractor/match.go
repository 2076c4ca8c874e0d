package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"resume-insight-go/internal/extractor"
)

// 定义匹配命令的命令行参数
var (
	matchSkills = flag.String("match-skills", "", "逗号分隔的必备技能列表，例如: python,sql,docker")
)

// 处理技能匹配命令
func handleMatchCommand() {
	if *matchSkills == "" {
		fmt.Println("错误: 必须提供 -match-skills 参数。")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := loadResumeText(ctx)
	if err != nil {
		fmt.Printf("错误: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	required := extractor.NormalizeRequired(strings.Split(*matchSkills, ","))

	ext := extractor.New(nil, nil)
	result, warnings, err := ext.MatchText(ctx, text, required)
	if err != nil {
		fmt.Printf("技能匹配失败: %v\n", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "警告: %s\n", w)
	}

	fmt.Printf("必备技能: %v\n", result.Required)
	fmt.Printf("已具备: %v\n", result.Found)
	fmt.Printf("缺失: %v\n", result.Missing)
	fmt.Printf("匹配率: %.1f%%\n", result.MatchRate)
}
