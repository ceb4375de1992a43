// internal/services/analyzer_service.go
package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// AnalyzerService 从自由文本的故事设定中抽取结构化信号
// 纯字符串处理，无任何I/O；抽取失败一律回落到默认值，从不返回错误
type AnalyzerService struct{}

// NewAnalyzerService 创建文本分析服务
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

const (
	// DefaultCharacterCount 未提及人数时的默认角色数
	DefaultCharacterCount = 2
	// MaxCharacterCount 角色数上限
	MaxCharacterCount = 10
)

// countPatterns 角色数量抽取规则，按序尝试，取首个命中
// 规则与匹配引擎分离，便于测试逐条枚举
var countPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([0-9]+)\s*个?(?:角色|人物|人)`),
	regexp.MustCompile(`需要\s*([0-9]+)\s*个`),
	regexp.MustCompile(`必须有\s*([0-9]+)\s*个`),
	regexp.MustCompile(`共\s*([0-9]+)\s*个`),
	regexp.MustCompile(`(一|两|二|三|四|五|六|七|八|九|十)\s*个?(?:角色|人物|人)`),
	regexp.MustCompile(`需要\s*(一|两|二|三|四|五|六|七|八|九|十)\s*个`),
	regexp.MustCompile(`共\s*(一|两|二|三|四|五|六|七|八|九|十)\s*个`),
}

// cnNumerals 中文数字到整数的映射，支持到十
var cnNumerals = map[string]int{
	"一": 1, "两": 2, "二": 2, "三": 3, "四": 4,
	"五": 5, "六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

// namePatterns 角色名抽取规则
// 2-4个汉字的名字采用非贪婪捕获，避免把后续动作一并吞入
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:角色|人物|主角|名叫|名字是|称为)([\p{Han}]{2,4}?)(?:[，。、！？\s]|走|来|站|看|在|是|和|$)`),
	regexp.MustCompile(`([\p{Han}]{2,4}?)(?:说道|说|问道|问|答道|回答|喊道|叫道)`),
}

// ExtractCharacterCount 从故事设定中抽取角色数量
// 无法识别时返回默认值2，结果钳制在[1,10]
func (s *AnalyzerService) ExtractCharacterCount(storyPrompt string) int {
	if storyPrompt == "" {
		return DefaultCharacterCount
	}

	for _, pattern := range countPatterns {
		match := pattern.FindStringSubmatch(storyPrompt)
		if match == nil {
			continue
		}

		var n int
		if v, err := strconv.Atoi(match[1]); err == nil {
			n = v
		} else if v, ok := cnNumerals[match[1]]; ok {
			n = v
		} else {
			continue
		}

		return clampCount(n)
	}

	return DefaultCharacterCount
}

// ExtractCharacterNames 从故事设定中按出现顺序抽取至多count个角色名
// 抽取数量不足时由角色合成器补齐，这里不负责补位
func (s *AnalyzerService) ExtractCharacterNames(storyPrompt string, count int) []string {
	names := make([]string, 0, count)
	if storyPrompt == "" || count <= 0 {
		return names
	}

	type hit struct {
		pos  int
		name string
	}
	var hits []hit

	for _, pattern := range namePatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(storyPrompt, -1) {
			// loc[2]/loc[3] 是第一个捕获组的范围
			if loc[2] < 0 {
				continue
			}
			name := storyPrompt[loc[2]:loc[3]]
			hits = append(hits, hit{pos: loc[2], name: name})
		}
	}

	// 按首次出现位置排序，去重后截取
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]bool)
	for _, h := range hits {
		if seen[h.name] || isNoiseName(h.name) {
			continue
		}
		seen[h.name] = true
		names = append(names, h.name)
		if len(names) >= count {
			break
		}
	}

	return names
}

// isNoiseName 过滤明显不是人名的捕获结果
func isNoiseName(name string) bool {
	noise := []string{"我们", "他们", "她们", "大家", "一个", "这个", "那个"}
	for _, w := range noise {
		if name == w {
			return true
		}
	}
	return strings.TrimSpace(name) == ""
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxCharacterCount {
		return MaxCharacterCount
	}
	return n
}
