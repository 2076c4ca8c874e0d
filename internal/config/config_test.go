package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证YAML配置能够被正确加载
func TestLoadConfigFromFile(t *testing.T) {
	// 1. 创建一个临时的 YAML 配置文件
	yamlContent := `
server:
  address: ":9000"
logger:
  level: "debug"
  format: "pretty"
keywords:
  skills_file: "/data/skills.csv"
parser:
  type: "ledong"
extractor:
  max_skills: 15
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	// 2. 加载配置
	config, err := LoadConfig(configPath)

	// 3. 断言结果
	require.NoError(t, err, "加载合法配置不应返回错误")
	require.NotNil(t, config)

	assert.Equal(t, ":9000", config.Server.Address)
	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, "pretty", config.Logger.Format)
	assert.Equal(t, "/data/skills.csv", config.Keywords.SkillsFile)
	assert.Equal(t, "ledong", config.Parser.Type)
	assert.Equal(t, 15, config.Extractor.MaxSkills)
}

// TestLoadConfigAppliesDefaults 缺省字段应被填充默认值
func TestLoadConfigAppliesDefaults(t *testing.T) {
	yamlContent := `
server:
  address: ":9000"
`
	tmpDir, err := os.MkdirTemp("", "config-test-defaults")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":9000", config.Server.Address, "显式配置的字段保持原值")
	assert.Equal(t, "info", config.Logger.Level, "日志级别应有默认值")
	assert.Equal(t, "json", config.Logger.Format, "日志格式应有默认值")
	assert.Equal(t, "eino", config.Parser.Type, "解析器类型应有默认值")
	assert.Equal(t, 30, config.Extractor.MaxSkills, "技能上限应有默认值")
}

// TestLoadConfigInvalidYAML 非法YAML应返回错误
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-invalid")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not a map"), 0644))

	_, err = LoadConfig(configPath)
	assert.Error(t, err, "非法YAML应返回解析错误")
}

// TestDefault 零配置可用
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8888", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 30, cfg.Extractor.MaxSkills)
	assert.Empty(t, cfg.Keywords.SkillsFile, "词表路径默认为空，表示使用内置数据")
}
