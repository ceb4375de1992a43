// internal/services/character_service.go
package services

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

// CharacterService 角色合成器：由原型、期望人数与抽取到的名字合成完整阵容
// 永不失败，信息缺口一律用名库与模板补齐
type CharacterService struct {
	AnalyzerService *AnalyzerService
}

// NewCharacterService 创建角色合成服务
func NewCharacterService(analyzer *AnalyzerService) *CharacterService {
	return &CharacterService{AnalyzerService: analyzer}
}

// Synthesize 合成角色阵容
// 返回的四个切片长度恒等于characterCount且按位对齐
func (s *CharacterService) Synthesize(archetype models.Archetype, productName string, audience models.Audience, characterCount int, storyPrompt string) models.Cast {
	characterCount = clampCount(characterCount)

	// 1. 先把故事设定里点名的角色收进来
	names := s.AnalyzerService.ExtractCharacterNames(storyPrompt, characterCount)

	// 2. 名字不够时生成主角名并放在首位
	if len(names) < characterCount {
		lead := s.protagonistName(productName, storyPrompt)
		if !containsName(names, lead) {
			names = append([]string{lead}, names...)
		}
	}

	// 3. 其余空位从原型名库补齐，名库用尽后走通用名库
	bank := archetypeNameBanks[archetype.ID]
	if bank == nil {
		bank = genericNameBank
	}
	for _, candidate := range bank {
		if len(names) >= characterCount {
			break
		}
		if !containsName(names, candidate) {
			names = append(names, candidate)
		}
	}
	for i := 0; len(names) < characterCount; i++ {
		candidate := genericNameBank[i%len(genericNameBank)]
		if !containsName(names, candidate) {
			names = append(names, candidate)
		} else {
			// 连通用名都用尽时加序号兜底
			names = append(names, fmt.Sprintf("%s%d", candidate, len(names)+1))
		}
	}
	names = names[:characterCount]

	cast := models.Cast{
		Names:        names,
		Roles:        make([]string, characterCount),
		Descriptions: make([]string, characterCount),
		Arcs:         make([]string, characterCount),
	}

	age := ageBracket(audience.Age)
	for i := 0; i < characterCount; i++ {
		switch {
		case i == 0 && len(archetype.Templates) > 0:
			// 首位恒用原型的第一个模板，插入年龄段与产品名
			tpl := archetype.Templates[0]
			cast.Roles[i] = tpl.Role
			cast.Descriptions[i] = interpolate(tpl.Description, age, productName)
			cast.Arcs[i] = tpl.Arc
		case i == 1 && len(archetype.Templates) > 1:
			tpl := archetype.Templates[1]
			cast.Roles[i] = tpl.Role
			cast.Descriptions[i] = tpl.Description
			cast.Arcs[i] = tpl.Arc
			// AI类产品时第二角色直接以产品化身出场
			if looksLikeAIProduct(productName) {
				cast.Names[i] = productName + "助手"
			}
		case i == 2 && len(archetype.Templates) > 2:
			tpl := archetype.Templates[2]
			cast.Roles[i] = tpl.Role
			cast.Descriptions[i] = tpl.Description
			cast.Arcs[i] = tpl.Arc
		default:
			cast.Roles[i] = "配角"
			cast.Descriptions[i] = "推动情节或衬托主角的辅助角色"
			cast.Arcs[i] = "在关键节点给主角一次助推"
		}
	}

	return cast
}

// protagonistName 生成主角名
// AI/智能类产品用固定的科技感名字，否则按输入哈希从名库里取，
// 同样的创意输入恒得到同一个名字
func (s *CharacterService) protagonistName(productName, storyPrompt string) string {
	if looksLikeAIProduct(productName) {
		return "林深"
	}

	h := fnv.New32a()
	h.Write([]byte(productName))
	h.Write([]byte(storyPrompt))
	return genericNameBank[int(h.Sum32())%len(genericNameBank)]
}

// looksLikeAIProduct 粗判产品是否为AI/智能类
func looksLikeAIProduct(productName string) bool {
	lower := strings.ToLower(productName)
	return strings.Contains(lower, "ai") || strings.Contains(productName, "智能")
}

// interpolate 替换模板中的年龄段与产品名占位符
func interpolate(tpl, age, productName string) string {
	out := strings.ReplaceAll(tpl, "{age}", age)
	out = strings.ReplaceAll(out, "{product}", productName)
	return out
}

// ageBracket 把受众年龄标签转成角色年龄描述
func ageBracket(ageLabel string) string {
	if bracket, ok := ageBrackets[ageLabel]; ok {
		return bracket
	}
	return defaultAgeBracket
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
