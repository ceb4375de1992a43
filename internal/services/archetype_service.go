// internal/services/archetype_service.go
package services

import (
	"strings"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

// ArchetypeService 根据概念/情绪/调性信号为创意匹配叙事原型
// 评分规则为有序切片，平局时按原型目录插入顺序取先出现者，
// 保证同样输入恒返回同样结果
type ArchetypeService struct{}

// NewArchetypeService 创建原型分类服务
func NewArchetypeService() *ArchetypeService {
	return &ArchetypeService{}
}

// Classify 选出主原型、互补副原型与配比标签
// 任何关键词都未命中时主原型兜底为她型，不报错
func (s *ArchetypeService) Classify(concept, productCategory, endingEmotion, toneWords string) models.ArchetypeResult {
	scores := make(map[string]int)

	// 概念关键词逐条加分
	for _, rule := range conceptRules {
		if strings.Contains(concept, rule.Keyword) {
			scores[rule.Archetype] += rule.Weight
		}
	}

	// 结尾情绪精确命中时主+3副+1
	for _, rule := range emotionRules {
		if endingEmotion == rule.Emotion {
			scores[rule.Primary] += 3
			scores[rule.Secondary] += 1
			break
		}
	}

	// 产品品类关键词作弱信号（+1），与概念规则共用一张表
	for _, rule := range conceptRules {
		if productCategory != "" && strings.Contains(productCategory, rule.Keyword) {
			scores[rule.Archetype]++
		}
	}

	primary := pickHighest(scores)
	if primary == "" {
		primary = DefaultArchetypeID
	}

	secondary, ok := complementMap[primary]
	if !ok {
		secondary = DefaultArchetypeID
	}

	return models.ArchetypeResult{
		Primary:    primary,
		Secondary:  secondary,
		BlendRatio: blendRatio(primary, toneWords),
	}
}

// FindArchetype 按ID查找目录条目，未找到时返回兜底原型
func (s *ArchetypeService) FindArchetype(id string) models.Archetype {
	for _, a := range archetypeCatalog {
		if a.ID == id {
			return a
		}
	}
	for _, a := range archetypeCatalog {
		if a.ID == DefaultArchetypeID {
			return a
		}
	}
	return archetypeCatalog[0]
}

// pickHighest 取得分最高的原型，平局按目录顺序取先出现者
func pickHighest(scores map[string]int) string {
	best := ""
	bestScore := 0
	for _, a := range archetypeCatalog {
		if scores[a.ID] > bestScore {
			best = a.ID
			bestScore = scores[a.ID]
		}
	}
	return best
}

// blendRatio 根据调性关键词决定主副原型配比标签
func blendRatio(primary, toneWords string) string {
	if strings.Contains(toneWords, "硬核") || strings.Contains(toneWords, "科技感") {
		return "90/10"
	}
	if strings.Contains(toneWords, "温暖") || strings.Contains(toneWords, "人文") {
		// 主原型本身已是暖型时不再追加权重
		if warmArchetypes[primary] {
			return "70/30"
		}
		return "80/20"
	}
	return "70/30"
}
