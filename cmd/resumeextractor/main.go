package main

import (
	"flag"
	"fmt"
	"os"
)

// 命令行参数定义
var (
	pdfFilePath = flag.String("pdf", "", "PDF简历文件路径")
	textFile    = flag.String("text", "", "纯文本简历文件路径(与-pdf二选一)")
	command     = flag.String("cmd", "extract", "执行的命令: extract=提取简历字段, match=技能匹配, score=完整度评分")
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 根据命令执行不同的功能
	switch *command {
	case "extract":
		handleExtractCommand()
	case "match":
		handleMatchCommand()
	case "score":
		handleScoreCommand()
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, match, score\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}
