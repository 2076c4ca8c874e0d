package types

import "strings"

// EntityLabel 表示标注器输出的实体类别
type EntityLabel string

const (
	// EntityPerson 人名实体
	EntityPerson EntityLabel = "PERSON"
	// EntityOrg 组织机构实体
	EntityOrg EntityLabel = "ORG"
	// EntityGPE 地理政治实体(城市、国家等)
	EntityGPE EntityLabel = "GPE"
	// EntityDate 日期实体
	EntityDate EntityLabel = "DATE"
	// EntityTime 时间实体
	EntityTime EntityLabel = "TIME"
	// EntityPercent 百分比实体
	EntityPercent EntityLabel = "PERCENT"
	// EntityMoney 货币实体
	EntityMoney EntityLabel = "MONEY"
	// EntityQuantity 数量实体
	EntityQuantity EntityLabel = "QUANTITY"
	// EntityOrdinal 序数实体
	EntityOrdinal EntityLabel = "ORDINAL"
	// EntityCardinal 基数实体
	EntityCardinal EntityLabel = "CARDINAL"
	// EntityEmail 邮箱实体
	EntityEmail EntityLabel = "EMAIL"
	// EntitySkill 技能实体(由专用技能模型产出)
	EntitySkill EntityLabel = "SKILL"
)

// Token 单个词法单元及其词性标注
type Token struct {
	Text string `json:"text"` // 原文
	POS  string `json:"pos"`  // 词性标签(Penn Treebank风格)
}

// IsVerb 判断词性是否为动词(VB/VBD/VBG/VBN/VBP/VBZ)
func (t Token) IsVerb() bool {
	return strings.HasPrefix(t.POS, "VB")
}

// Entity 一段带语义类别的文本区间
type Entity struct {
	Label EntityLabel `json:"label"` // 实体类别
	Text  string      `json:"text"`  // 区间原文
	Start int         `json:"start"` // 起始偏移(字节)
	End   int         `json:"end"`   // 结束偏移(字节)
}

// AnnotatedDocument 标注后的文档视图
// 由标注器一次性产出，之后只读；Tokens与Entities均按文档顺序排列
type AnnotatedDocument struct {
	Text     string   `json:"text"`
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// Lines 按行切分原文
func (d *AnnotatedDocument) Lines() []string {
	return strings.Split(d.Text, "\n")
}

// Verbs 收集所有动词的原始表面形式(不做大小写归一)
func (d *AnnotatedDocument) Verbs() []string {
	var verbs []string
	for _, tok := range d.Tokens {
		if tok.IsVerb() {
			verbs = append(verbs, tok.Text)
		}
	}
	return verbs
}

// EntitiesByLabel 按类别过滤实体，保持文档顺序
func (d *AnnotatedDocument) EntitiesByLabel(label EntityLabel) []Entity {
	var out []Entity
	for _, ent := range d.Entities {
		if ent.Label == label {
			out = append(out, ent)
		}
	}
	return out
}

// ExperienceLevel 经验层级
type ExperienceLevel string

const (
	// LevelEntry 入门级(无任何层级关键词命中时的默认值)
	LevelEntry ExperienceLevel = "Entry Level"
	// LevelMidJunior 初中级
	LevelMidJunior ExperienceLevel = "Mid-Junior"
	// LevelMidSenior 中高级
	LevelMidSenior ExperienceLevel = "Mid-Senior"
	// LevelSenior 高级
	LevelSenior ExperienceLevel = "Senior"
)

// PositionNotIdentified 无法根据动词匹配到任何岗位时的占位值
const PositionNotIdentified = "Position Not Identified"

// PhoneNotFound 电话号码未命中时的占位值
const PhoneNotFound = "Not found"

// Experience 经验分类结果
type Experience struct {
	Level             ExperienceLevel `json:"level_of_experience"` // 经验层级
	SuggestedPosition string          `json:"suggested_position"`  // 建议岗位
}

// ResumeRecord 单份简历的聚合提取结果
// 每次提取新建一份，构造完成后不再修改
type ResumeRecord struct {
	FirstName   string     `json:"first_name"`   // 名，可能为空
	LastName    string     `json:"last_name"`    // 姓，可能为空
	Email       string     `json:"email"`        // 邮箱，可能为空
	Phone       string     `json:"phone"`        // 电话，未命中时为"Not found"
	DegreeMajor string     `json:"degree_major"` // 专业，可能为空
	Skills      []string   `json:"skills"`       // 已验证技能，按大小写不敏感排序，最多30项
	Education   []string   `json:"education"`    // 教育机构名称，按文档顺序，可能含重复
	Experience  Experience `json:"experience"`   // 经验分类
	Score       int        `json:"score"`        // 完整度评分，{0,25,50,75,100}
}

// SkillMatchResult 招聘方技能匹配报告
// Found与Missing按调用方给出的required顺序划分，两者不相交且并集等于required
type SkillMatchResult struct {
	Required  []string `json:"required_skills"` // 调用方给出的必备技能(已小写去重)
	Found     []string `json:"found_skills"`    // 在简历中命中的技能
	Missing   []string `json:"missing_skills"`  // 未命中的技能
	MatchRate float64  `json:"match_rate"`      // 命中率百分比，required为空时定义为0
}
