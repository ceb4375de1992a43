// internal/services/content_filler.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/byqzydy/story-ad-sub000/internal/llm"
	"github.com/byqzydy/story-ad-sub000/internal/models"
)

// ShotContent 单个镜头的自由文本内容
type ShotContent struct {
	Visual      string
	Dialogue    string
	SoundDesign string
	MusicCue    string
	ProductNote string
	ShootingTip string
	PostNote    string
	GenPrompt   string
}

// FillContext 内容填充所需的全部结构化上下文
type FillContext struct {
	Brief     models.Brief
	Archetype models.ArchetypeResult
	Cast      models.Cast
	Shots     []models.Shot
	Style     models.VisualStyleProfile
	Emotion   models.EmotionProfile
}

// ContentFiller 镜头自由文本填充策略
// 骨架、表格与字段标签恒定，只有各字段内的创意文本允许来自非确定性来源。
// 整次生成最多发起一次外部调用，失败时整体报错，不返回半成品
type ContentFiller interface {
	FillShots(ctx context.Context, fc FillContext) ([]ShotContent, error)
}

// ---------------- 模板填充 ----------------

// TemplateFiller 确定性模板填充器，离线与测试场景使用
type TemplateFiller struct{}

// NewTemplateFiller 创建模板填充器
func NewTemplateFiller() *TemplateFiller {
	return &TemplateFiller{}
}

// FillShots 按静态档案逐镜头生成内容，同样输入恒得到同样输出
func (f *TemplateFiller) FillShots(_ context.Context, fc FillContext) ([]ShotContent, error) {
	contents := make([]ShotContent, len(fc.Shots))
	for i, shot := range fc.Shots {
		contents[i] = f.fillOne(fc, shot, i)
	}
	return contents, nil
}

func (f *TemplateFiller) fillOne(fc FillContext, shot models.Shot, idx int) ShotContent {
	last := idx == len(fc.Shots)-1
	lead := ""
	if len(fc.Cast.Names) > 0 {
		lead = fc.Cast.Names[0]
	}

	var c ShotContent

	switch {
	case idx == 0:
		c.Visual = fmt.Sprintf("%s的日常空间徐徐展开，%s元素交代环境与时间",
			lead, strings.Join(fc.Style.Keywords, "、"))
		c.Dialogue = "（无台词，环境定调）"
	case last:
		c.Visual = fc.Emotion.ClosingShot + fmt.Sprintf("，%s品牌标识干净收尾", fc.Brief.ProductName)
		c.Dialogue = fmt.Sprintf("旁白：「%s。」（潜台词：%s）",
			fc.Brief.CoreConcept, fc.Emotion.Label)
	default:
		c.Visual = fmt.Sprintf("%s段落推进：%s在场景%s中的情绪继续发酵",
			fc.Archetype.Primary, lead, shot.SceneLetter)
		c.Dialogue = "（留白或一句点题短句）"
	}

	if shot.ProductBearing {
		c.ProductNote = fmt.Sprintf("%s以%s景别自然入画，不抢叙事焦点", fc.Brief.ProductName, shot.ShotType)
	} else {
		c.ProductNote = "本镜头无产品露出"
	}

	c.SoundDesign = fmt.Sprintf("四层声音设计：环境底噪 / 动作音效 / %s / 情绪铺垫音", pickKeyword(fc.Emotion.Keywords, idx))
	c.MusicCue = fc.Emotion.MusicStyle
	c.ShootingTip = fmt.Sprintf("按%s执行，注意%s与%s的衔接", shot.CameraMovement, shot.ShotType, fc.Style.Pacing)
	c.PostNote = fmt.Sprintf("以%s为主色统一调色，辅助色%s压暗过渡", fc.Style.PrimaryColor, fc.Style.SecondaryColor)
	c.GenPrompt = genPrompt(fc, shot, last)

	return c
}

// pickKeyword 在关键词表内循环取词，保证逐镜头有变化又完全确定
func pickKeyword(keywords []string, idx int) string {
	if len(keywords) == 0 {
		return "氛围声"
	}
	return keywords[idx%len(keywords)]
}

// genPrompt 生成英文的AI图像/视频提示词
func genPrompt(fc FillContext, shot models.Shot, last bool) string {
	subject := "protagonist in daily life"
	if shot.ProductBearing {
		subject = fmt.Sprintf("product %s held naturally by protagonist", fc.Brief.ProductName)
	}
	if last {
		subject = "emotional closing moment with brand logo"
	}
	return fmt.Sprintf("cinematic advertisement still, %s, %s shot, %s camera move, %s aspect ratio, mood: %s",
		subject, shot.ShotType, shot.CameraMovement, fc.Brief.AspectRatio, fc.Emotion.Label)
}

// ---------------- LLM填充 ----------------

// LLMFiller 把全部镜头骨架汇成一个大提示词，发起单次外部生成调用，
// 再按镜头标记拆回逐镜头内容。解析失败视为生成失败
type LLMFiller struct {
	LLMService *LLMService
	Options    models.GenerateOptions
}

// NewLLMFiller 创建LLM填充器
func NewLLMFiller(llmService *LLMService, opts models.GenerateOptions) *LLMFiller {
	return &LLMFiller{
		LLMService: llmService,
		Options:    opts,
	}
}

const fillerSystemPrompt = `你是资深广告导演与分镜师。根据给出的创意简报与镜头骨架，为每个镜头写出画面内容、台词/旁白（含潜台词）、四层声音设计、音乐提示、产品植入说明、拍摄提示、后期提示，以及一条英文AI生成提示词。每个镜头以【镜头N】起始，字段按"画面：/台词：/声音：/音乐：/产品：/拍摄：/后期：/提示词："标注，不要输出其他内容。`

// FillShots 发起单次生成调用并解析结果
func (f *LLMFiller) FillShots(ctx context.Context, fc FillContext) ([]ShotContent, error) {
	prompt := f.buildPrompt(fc)

	text, err := f.LLMService.CompleteText(ctx, llm.CompletionRequest{
		Prompt:       prompt,
		SystemPrompt: fillerSystemPrompt,
		Model:        f.Options.Model,
		MaxTokens:    f.Options.MaxTokens,
		Temperature:  float32(f.Options.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("镜头内容生成失败: %w", err)
	}

	contents, err := f.parse(text, len(fc.Shots))
	if err != nil {
		return nil, fmt.Errorf("镜头内容解析失败: %w", err)
	}
	return contents, nil
}

// buildPrompt 由同一套结构化输入构造用户提示词
func (f *LLMFiller) buildPrompt(fc FillContext) string {
	var b strings.Builder

	b.WriteString("## 创意简报\n")
	b.WriteString(fmt.Sprintf("产品：%s（%s）\n", fc.Brief.ProductName, fc.Brief.ProductDescription))
	b.WriteString(fmt.Sprintf("核心概念：%s\n", fc.Brief.CoreConcept))
	b.WriteString(fmt.Sprintf("叙事原型：%s（副线%s，配比%s）\n",
		fc.Archetype.Primary, fc.Archetype.Secondary, fc.Archetype.BlendRatio))
	b.WriteString(fmt.Sprintf("结尾情绪：%s，视觉风格：%s\n", fc.Brief.EndingEmotion, fc.Brief.VisualStyle))

	b.WriteString("## 角色\n")
	for i, name := range fc.Cast.Names {
		b.WriteString(fmt.Sprintf("- %s（%s）：%s\n", name, fc.Cast.Roles[i], fc.Cast.Descriptions[i]))
	}

	b.WriteString("## 镜头骨架\n")
	for _, shot := range fc.Shots {
		b.WriteString(fmt.Sprintf("【镜头%d】场景%s %d-%d秒 %s %s 产品露出:%v\n",
			shot.Index, shot.SceneLetter, shot.StartSec, shot.EndSec,
			shot.ShotType, shot.CameraMovement, shot.ProductBearing))
	}

	return b.String()
}

// parse 按【镜头N】标记拆分生成文本
func (f *LLMFiller) parse(text string, shotCount int) ([]ShotContent, error) {
	sections := splitShotSections(text, shotCount)
	if len(sections) != shotCount {
		return nil, fmt.Errorf("期望%d个镜头段落，实际解析出%d个", shotCount, len(sections))
	}

	contents := make([]ShotContent, shotCount)
	for i, section := range sections {
		contents[i] = ShotContent{
			Visual:      fieldAfter(section, "画面："),
			Dialogue:    fieldAfter(section, "台词："),
			SoundDesign: fieldAfter(section, "声音："),
			MusicCue:    fieldAfter(section, "音乐："),
			ProductNote: fieldAfter(section, "产品："),
			ShootingTip: fieldAfter(section, "拍摄："),
			PostNote:    fieldAfter(section, "后期："),
			GenPrompt:   fieldAfter(section, "提示词："),
		}
		if contents[i].Visual == "" {
			return nil, fmt.Errorf("镜头%d缺少画面内容", i+1)
		}
	}
	return contents, nil
}

func splitShotSections(text string, shotCount int) []string {
	var sections []string
	for i := 1; i <= shotCount; i++ {
		marker := fmt.Sprintf("【镜头%d】", i)
		start := strings.Index(text, marker)
		if start < 0 {
			break
		}
		end := len(text)
		next := fmt.Sprintf("【镜头%d】", i+1)
		if pos := strings.Index(text, next); pos > start {
			end = pos
		}
		sections = append(sections, text[start:end])
	}
	return sections
}

// fieldAfter 取字段标签之后到行尾的内容
func fieldAfter(section, label string) string {
	start := strings.Index(section, label)
	if start < 0 {
		return ""
	}
	rest := section[start+len(label):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSpace(rest)
}
