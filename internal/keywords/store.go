package keywords // 词表存储：从CSV数据源加载领域词汇

import (
	"embed"
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/logger"
)

//go:embed data/*.csv
var defaultData embed.FS

// 内置数据文件名
const (
	defaultSkillsFile          = "data/skills.csv"
	defaultMajorsFile          = "data/majors.csv"
	defaultPositionsFile       = "data/positions.csv"
	defaultSuggestedSkillsFile = "data/suggested_skills.csv"
)

// KeywordSet 命名的去重词表
// 保留词条的原始大小写(技能输出需要按词表原文返回)，查询按小写比较
type KeywordSet struct {
	Name    string
	entries []string
	index   map[string]string // 小写 -> 原始写法
}

// NewKeywordSet 从词条列表构造词表，按小写去重，保留首次出现的写法
func NewKeywordSet(name string, entries []string) *KeywordSet {
	s := &KeywordSet{Name: name, index: make(map[string]string)}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		lower := strings.ToLower(e)
		if _, ok := s.index[lower]; ok {
			continue
		}
		s.index[lower] = e
		s.entries = append(s.entries, e)
	}
	return s
}

// Entries 返回词条(加载顺序)，调用方不得修改
func (s *KeywordSet) Entries() []string {
	return s.entries
}

// Contains 大小写不敏感的成员判断
func (s *KeywordSet) Contains(keyword string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(keyword))]
	return ok
}

// Len 词条数
func (s *KeywordSet) Len() int {
	return len(s.entries)
}

// SortLongestFirst 把词条按长度降序(等长按字典序)重排
// 专业词表用它获得确定性的最长优先匹配顺序
func (s *KeywordSet) SortLongestFirst() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		if len(s.entries[i]) != len(s.entries[j]) {
			return len(s.entries[i]) > len(s.entries[j])
		}
		return s.entries[i] < s.entries[j]
	})
}

// PositionEntry 岗位及其触发关键词，顺序即匹配优先级
type PositionEntry struct {
	Title    string
	Keywords []string // 已小写
}

// SuggestionEntry 岗位及其推荐技能
type SuggestionEntry struct {
	Title  string
	Skills []string
}

// Store 聚合四类词表数据源
// 进程内加载一次，之后只读，可被并发提取安全共享
type Store struct {
	Skills    *KeywordSet
	Majors    *KeywordSet
	Positions []PositionEntry
	Suggested []SuggestionEntry

	log zerolog.Logger
}

// NewStore 按配置加载词表
// 路径为空的数据源回退到内置词表；路径存在但加载失败时降级为空词表并告警，
// 绝不让词表问题中断提取流程
func NewStore(cfg config.KeywordsConfig) *Store {
	s := &Store{log: logger.With("keywords")}

	s.Skills = s.loadSet("skills", cfg.SkillsFile, defaultSkillsFile)
	s.Majors = s.loadSet("majors", cfg.MajorsFile, defaultMajorsFile)
	// 专业词表排成最长优先，保证子串匹配结果与平台无关
	s.Majors.SortLongestFirst()
	s.Positions = s.loadPositions(cfg.PositionsFile)
	s.Suggested = s.loadSuggestions(cfg.SuggestedSkillsFile)

	s.log.Info().
		Int("skills", s.Skills.Len()).
		Int("majors", s.Majors.Len()).
		Int("positions", len(s.Positions)).
		Int("suggestions", len(s.Suggested)).
		Msg("词表加载完成")
	return s
}

// Default 全部使用内置词表
func Default() *Store {
	return NewStore(config.KeywordsConfig{})
}

// SuggestedFor 返回指定岗位的推荐技能，岗位未知时返回空切片
func (s *Store) SuggestedFor(jobTitle string) []string {
	want := strings.ToLower(strings.TrimSpace(jobTitle))
	for _, entry := range s.Suggested {
		if strings.ToLower(entry.Title) == want {
			return entry.Skills
		}
	}
	return nil
}

// loadSet 加载单列CSV词表(跳过表头)
func (s *Store) loadSet(name, path, fallback string) *KeywordSet {
	rows, err := s.readCSV(path, fallback)
	if err != nil {
		s.log.Warn().Err(err).Str("set", name).Str("path", path).Msg("词表加载失败，使用空词表")
		return NewKeywordSet(name, nil)
	}

	var entries []string
	for i, row := range rows {
		if i == 0 {
			continue // 表头
		}
		if len(row) > 0 {
			entries = append(entries, row[0])
		}
	}
	return NewKeywordSet(name, entries)
}

// loadPositions 加载岗位->触发关键词映射(表头: position,keywords)
// 返回切片而非map：下游按加载顺序做首个命中
func (s *Store) loadPositions(path string) []PositionEntry {
	rows, err := s.readCSV(path, defaultPositionsFile)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("岗位词表加载失败，岗位建议不可用")
		return nil
	}

	var positions []PositionEntry
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		title := strings.TrimSpace(row[0])
		if title == "" {
			continue
		}
		var kws []string
		for _, kw := range strings.Split(row[1], ",") {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		positions = append(positions, PositionEntry{Title: title, Keywords: kws})
	}
	return positions
}

// loadSuggestions 加载岗位->推荐技能映射(无表头, 行格式: 岗位,技能1,技能2,...)
func (s *Store) loadSuggestions(path string) []SuggestionEntry {
	rows, err := s.readCSV(path, defaultSuggestedSkillsFile)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("推荐技能词表加载失败，技能建议不可用")
		return nil
	}

	var suggestions []SuggestionEntry
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		title := strings.TrimSpace(row[0])
		if title == "" {
			continue
		}
		var skills []string
		for _, sk := range row[1:] {
			sk = strings.TrimSpace(sk)
			if sk != "" {
				skills = append(skills, sk)
			}
		}
		suggestions = append(suggestions, SuggestionEntry{Title: title, Skills: skills})
	}
	return suggestions
}

// readCSV 读取CSV的全部行
// path为空时读取内置数据；打开的文件在任何返回路径上都会关闭
func (s *Store) readCSV(path, fallback string) ([][]string, error) {
	var reader io.Reader
	if path == "" {
		f, err := defaultData.Open(fallback)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1 // 行宽不定(推荐技能每行列数不同)
	return r.ReadAll()
}
