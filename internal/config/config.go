package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resume-insight-go/internal/logger"
)

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Address string `yaml:"address"` // 监听地址，例如 ":8888"
}

// KeywordsConfig 词表数据源配置
// 任一路径为空时使用内置的嵌入词表
type KeywordsConfig struct {
	SkillsFile          string `yaml:"skills_file"`           // 技能词表CSV
	MajorsFile          string `yaml:"majors_file"`           // 专业词表CSV
	PositionsFile       string `yaml:"positions_file"`        // 岗位->触发关键词CSV
	SuggestedSkillsFile string `yaml:"suggested_skills_file"` // 岗位->推荐技能CSV
}

// ParserConfig PDF解析器配置
type ParserConfig struct {
	Type string `yaml:"type"` // 解析器类型: "eino"(默认) 或 "ledong"
}

// ExtractorConfig 提取核心配置
type ExtractorConfig struct {
	MaxSkills int `yaml:"max_skills"` // 技能输出上限，默认30
}

// Config 应用程序配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    logger.Config   `yaml:"logger"`
	Keywords  KeywordsConfig  `yaml:"keywords"`
	Parser    ParserConfig    `yaml:"parser"`
	Extractor ExtractorConfig `yaml:"extractor"`
}

// applyDefaults 填充缺省值，保证零配置也能运行
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8888"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Parser.Type == "" {
		c.Parser.Type = "eino"
	}
	if c.Extractor.MaxSkills <= 0 {
		c.Extractor.MaxSkills = 30
	}
}

// Default 返回一份全默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig 加载配置文件
// configPath为空时依次尝试环境变量RESUME_INSIGHT_CONFIG_PATH和常见位置；
// 全部找不到时返回默认配置而不是报错
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv("RESUME_INSIGHT_CONFIG_PATH")
	}

	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-insight", "config.yaml"),
		}
		// 可执行文件所在目录也在搜索范围内
		if execPath, err := os.Executable(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(filepath.Dir(execPath), "config.yaml"))
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
	}

	if configPath == "" {
		// 找不到配置文件不是错误，缺省配置保证可用
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}
