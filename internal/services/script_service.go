// internal/services/script_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

// ScriptService 脚本生成引擎的编排入口
// 抽取、分类、角色合成、分镜规划全部为纯计算；唯一的I/O边界
// 是内容填充器里那次可选的外部生成调用
type ScriptService struct {
	AnalyzerService   *AnalyzerService
	ArchetypeService  *ArchetypeService
	CharacterService  *CharacterService
	StoryboardService *StoryboardService
	LLMService        *LLMService
}

// NewScriptService 创建脚本服务
func NewScriptService(analyzer *AnalyzerService, archetype *ArchetypeService,
	character *CharacterService, storyboard *StoryboardService, llmService *LLMService) *ScriptService {
	return &ScriptService{
		AnalyzerService:   analyzer,
		ArchetypeService:  archetype,
		CharacterService:  character,
		StoryboardService: storyboard,
		LLMService:        llmService,
	}
}

// GenerateScript 由创意简报生成完整拍摄脚本
// LLM就绪时走单次外部调用填充创意文本，否则走确定性模板；
// 外部调用失败整体失败，不返回半成品
func (s *ScriptService) GenerateScript(ctx context.Context, brief models.Brief, opts models.GenerateOptions) models.GenerateResult {
	version := opts.Version
	if version < 1 {
		version = 1
	}
	versionLabel := fmt.Sprintf("V%d", version)

	// 1. 从故事设定抽取角色数量，简报点名的角色数优先
	characterCount := s.AnalyzerService.ExtractCharacterCount(brief.StoryPrompt)
	if len(brief.CharacterNames) > characterCount {
		characterCount = clampCount(len(brief.CharacterNames))
	}

	// 2. 匹配叙事原型，简报给了明确倾向时直接采纳
	archetypeResult := s.ArchetypeService.Classify(
		brief.CoreConcept, brief.ProductDescription, brief.EndingEmotion, brief.ProductTone)
	if brief.ArchetypeHint != "" {
		for _, a := range archetypeCatalog {
			if a.ID == brief.ArchetypeHint {
				archetypeResult.Primary = a.ID
				archetypeResult.Secondary = complementMap[a.ID]
				break
			}
		}
	}

	// 3. 合成角色阵容
	archetype := s.ArchetypeService.FindArchetype(archetypeResult.Primary)
	cast := s.CharacterService.Synthesize(archetype, brief.ProductName, brief.Audience, characterCount, brief.StoryPrompt)

	// 4. 规划分镜
	shots := s.StoryboardService.Plan(brief.Duration, brief.ProductVisibility)

	// 5. 填充创意文本
	fc := FillContext{
		Brief:     brief,
		Archetype: archetypeResult,
		Cast:      cast,
		Shots:     shots,
		Style:     styleProfile(brief.VisualStyle),
		Emotion:   emotionProfile(brief.EndingEmotion),
	}

	contents, err := s.filler(opts).FillShots(ctx, fc)
	if err != nil {
		return models.GenerateResult{
			Success: false,
			Version: versionLabel,
			Error:   fmt.Sprintf("脚本生成失败: %v", err),
		}
	}

	for i := range shots {
		shots[i].Visual = contents[i].Visual
		shots[i].Dialogue = contents[i].Dialogue
		shots[i].SoundDesign = contents[i].SoundDesign
		shots[i].MusicCue = contents[i].MusicCue
		shots[i].ProductNote = contents[i].ProductNote
		shots[i].ShootingTip = contents[i].ShootingTip
		shots[i].PostNote = contents[i].PostNote
		shots[i].GenPrompt = contents[i].GenPrompt
	}

	// 6. 组装最终文档
	document := s.assemble(brief, archetypeResult, cast, shots, versionLabel)

	return models.GenerateResult{
		Success:    true,
		Script:     document,
		ShotList:   shots,
		Characters: cast.Characters(),
		Archetype:  archetypeResult.Primary,
		Version:    versionLabel,
	}
}

// filler 选择内容填充策略：LLM就绪走外部生成，否则走模板
func (s *ScriptService) filler(opts models.GenerateOptions) ContentFiller {
	if s.LLMService != nil && s.LLMService.IsReady() {
		return NewLLMFiller(s.LLMService, opts)
	}
	return NewTemplateFiller()
}

// assemble 把结构化结果组装为单个人类可读文本文档
// 头部、表格、镜头骨架与字段标签完全确定，修订引擎依赖其中的版本行
func (s *ScriptService) assemble(brief models.Brief, archetypeResult models.ArchetypeResult,
	cast models.Cast, shots []models.Shot, versionLabel string) string {
	var b strings.Builder

	// ---- 标题与元信息 ----
	b.WriteString(fmt.Sprintf("# %s × %s 拍摄脚本\n\n", brief.ProductName, archetypeResult.Primary))
	b.WriteString(fmt.Sprintf("版本：%s\n\n", versionLabel))

	b.WriteString("## 制作信息\n\n")
	b.WriteString(fmt.Sprintf("- 时长：%s\n", brief.Duration))
	b.WriteString(fmt.Sprintf("- 画幅：%s\n", brief.AspectRatio))
	b.WriteString(fmt.Sprintf("- 场景数：%d，镜头数：%d\n", distinctSceneCount(shots), len(shots)))
	b.WriteString(fmt.Sprintf("- 产品露出占比：%d%%\n", brief.ProductVisibility))
	b.WriteString(fmt.Sprintf("- 旁白：%s\n", yesNo(brief.Voiceover)))
	b.WriteString(fmt.Sprintf("- 目标受众：%s / %s\n", brief.Audience.Gender, brief.Audience.Age))
	b.WriteString(fmt.Sprintf("- 结尾情绪：%s\n", brief.EndingEmotion))
	b.WriteString(fmt.Sprintf("- 叙事原型：%s + %s（%s）\n\n",
		archetypeResult.Primary, archetypeResult.Secondary, archetypeResult.BlendRatio))

	// ---- 角色表 ----
	b.WriteString("## 角色表\n\n")
	for i, name := range cast.Names {
		b.WriteString(fmt.Sprintf("%d. %s ｜ %s ｜ %s ｜ 弧线：%s\n",
			i+1, name, cast.Roles[i], cast.Descriptions[i], cast.Arcs[i]))
	}
	b.WriteString("\n")

	// ---- 场景表 ----
	b.WriteString("## 场景表\n\n")
	for _, letter := range distinctSceneLetters(shots) {
		b.WriteString(fmt.Sprintf("- 场景%s：%s\n", letter, SceneLabel(letter)))
	}
	b.WriteString("\n")

	// ---- 产品说明 ----
	b.WriteString("## 产品说明\n\n")
	b.WriteString(fmt.Sprintf("- 产品：%s\n", brief.ProductName))
	b.WriteString(fmt.Sprintf("- 卖点：%s\n\n", brief.ProductDescription))

	// ---- 逐镜头 ----
	b.WriteString("## 分镜脚本\n\n")
	introduced := make(map[string]bool)
	for i, shot := range shots {
		s.renderShot(&b, shot, cast, introduced, i)
	}

	return b.String()
}

// renderShot 渲染单个镜头的十二字段小节
// 每个角色首次入画的镜头必须带一句人物介绍
func (s *ScriptService) renderShot(b *strings.Builder, shot models.Shot,
	cast models.Cast, introduced map[string]bool, idx int) {
	b.WriteString(fmt.Sprintf("### 镜头%d ｜ 场景%s ｜ %d秒 ｜ %d-%d秒\n\n",
		shot.Index, shot.SceneLetter, shot.DurationSec, shot.StartSec, shot.EndSec))

	b.WriteString(fmt.Sprintf("- 景别：%s\n", shot.ShotType))
	b.WriteString(fmt.Sprintf("- 机位：%s\n", shot.CameraPosition))
	b.WriteString(fmt.Sprintf("- 运镜：%s\n", shot.CameraMovement))
	b.WriteString(fmt.Sprintf("- 速率：%s\n", shot.Speed))

	// 按顺序安排角色首次入画：第i个镜头介绍第i位角色
	visual := shot.Visual
	if idx < len(cast.Names) && !introduced[cast.Names[idx]] {
		introduced[cast.Names[idx]] = true
		intro := fmt.Sprintf("【人物介绍】%s，%s，%s，首次入画。",
			cast.Names[idx], cast.Roles[idx], cast.Descriptions[idx])
		visual = intro + " " + visual
	}
	b.WriteString(fmt.Sprintf("- 画面内容：%s\n", visual))

	b.WriteString(fmt.Sprintf("- 台词/旁白：%s\n", shot.Dialogue))
	b.WriteString(fmt.Sprintf("- 声音设计：%s\n", shot.SoundDesign))
	b.WriteString(fmt.Sprintf("- 音乐提示：%s\n", shot.MusicCue))
	b.WriteString(fmt.Sprintf("- 产品植入：%s\n", shot.ProductNote))
	b.WriteString(fmt.Sprintf("- 拍摄提示：%s\n", shot.ShootingTip))
	b.WriteString(fmt.Sprintf("- 后期提示：%s\n", shot.PostNote))
	b.WriteString(fmt.Sprintf("- AI生成提示词：%s\n\n", shot.GenPrompt))
}

func styleProfile(label string) models.VisualStyleProfile {
	if profile, ok := visualStyleProfiles[label]; ok {
		return profile
	}
	return defaultStyleProfile
}

func emotionProfile(label string) models.EmotionProfile {
	if profile, ok := emotionProfiles[label]; ok {
		return profile
	}
	return defaultEmotionProfile
}

func distinctSceneLetters(shots []models.Shot) []string {
	var letters []string
	seen := make(map[string]bool)
	for _, shot := range shots {
		if !seen[shot.SceneLetter] {
			seen[shot.SceneLetter] = true
			letters = append(letters, shot.SceneLetter)
		}
	}
	return letters
}

func distinctSceneCount(shots []models.Shot) int {
	return len(distinctSceneLetters(shots))
}

func yesNo(v bool) string {
	if v {
		return "有"
	}
	return "无"
}
