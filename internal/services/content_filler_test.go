package services

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

func newFillContextForTest() FillContext {
	brief := models.Brief{
		ProductName:        "光语AI",
		ProductDescription: "全天候的智能语音伴侣",
		CoreConcept:        "科技让陪伴更近",
		EndingEmotion:      "温暖希望",
		Duration:           "30s",
		AspectRatio:        "9:16",
		ProductVisibility:  30,
	}

	archetype := NewArchetypeService()
	character := NewCharacterService(NewAnalyzerService())
	storyboard := NewStoryboardService()

	result := archetype.Classify(brief.CoreConcept, brief.ProductDescription, brief.EndingEmotion, brief.ProductTone)
	cast := character.Synthesize(archetype.FindArchetype(result.Primary), brief.ProductName, brief.Audience, 2, brief.StoryPrompt)

	return FillContext{
		Brief:     brief,
		Archetype: result,
		Cast:      cast,
		Shots:     storyboard.Plan(brief.Duration, brief.ProductVisibility),
		Style:     styleProfile(brief.VisualStyle),
		Emotion:   emotionProfile(brief.EndingEmotion),
	}
}

func TestTemplateFillerFillsEveryShot(t *testing.T) {
	fc := newFillContextForTest()

	contents, err := NewTemplateFiller().FillShots(context.Background(), fc)
	if err != nil {
		t.Fatalf("模板填充不应失败: %v", err)
	}
	if len(contents) != len(fc.Shots) {
		t.Fatalf("内容条数 = %d, want %d", len(contents), len(fc.Shots))
	}

	for i, c := range contents {
		if c.Visual == "" || c.Dialogue == "" || c.SoundDesign == "" ||
			c.MusicCue == "" || c.ProductNote == "" || c.ShootingTip == "" ||
			c.PostNote == "" || c.GenPrompt == "" {
			t.Fatalf("镜头%d存在空字段: %+v", i+1, c)
		}
	}

	// 首镜头环境定调，末镜头落在情绪档案的收尾画面与品牌上
	if contents[0].Dialogue != "（无台词，环境定调）" {
		t.Fatalf("首镜头台词 = %q", contents[0].Dialogue)
	}
	last := contents[len(contents)-1]
	if !strings.Contains(last.Visual, fc.Emotion.ClosingShot) || !strings.Contains(last.Visual, "光语AI") {
		t.Fatalf("末镜头画面未收在情绪落点与品牌上: %q", last.Visual)
	}
}

func TestTemplateFillerMarksProductShots(t *testing.T) {
	fc := newFillContextForTest()

	contents, err := NewTemplateFiller().FillShots(context.Background(), fc)
	if err != nil {
		t.Fatalf("模板填充不应失败: %v", err)
	}

	for i, shot := range fc.Shots {
		if shot.ProductBearing {
			if !strings.Contains(contents[i].ProductNote, "光语AI") {
				t.Fatalf("产品镜头%d说明缺少产品名: %q", i+1, contents[i].ProductNote)
			}
		} else if contents[i].ProductNote != "本镜头无产品露出" {
			t.Fatalf("非产品镜头%d说明 = %q", i+1, contents[i].ProductNote)
		}
	}
}

func TestTemplateFillerIsDeterministic(t *testing.T) {
	fc := newFillContextForTest()
	filler := NewTemplateFiller()

	first, err := filler.FillShots(context.Background(), fc)
	if err != nil {
		t.Fatalf("模板填充不应失败: %v", err)
	}
	again, err := filler.FillShots(context.Background(), fc)
	if err != nil {
		t.Fatalf("模板填充不应失败: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("同样输入得到不同内容")
	}
}

func llmSectionText(shotCount int) string {
	var b strings.Builder
	for i := 1; i <= shotCount; i++ {
		b.WriteString(fmt.Sprintf("【镜头%d】\n", i))
		b.WriteString(fmt.Sprintf("画面：第%d镜的画面描述\n", i))
		b.WriteString("台词：一句旁白\n")
		b.WriteString("声音：环境底噪与动作音效\n")
		b.WriteString("音乐：钢琴铺底\n")
		b.WriteString("产品：自然入画\n")
		b.WriteString("拍摄：注意衔接\n")
		b.WriteString("后期：统一调色\n")
		b.WriteString("提示词：cinematic still\n")
	}
	return b.String()
}

func TestLLMFillerParsesShotSections(t *testing.T) {
	f := NewLLMFiller(nil, models.GenerateOptions{})

	contents, err := f.parse(llmSectionText(3), 3)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(contents) != 3 {
		t.Fatalf("解析出%d段, want 3", len(contents))
	}
	if contents[1].Visual != "第2镜的画面描述" {
		t.Fatalf("画面字段解析错误: %q", contents[1].Visual)
	}
	if contents[0].GenPrompt != "cinematic still" {
		t.Fatalf("提示词字段解析错误: %q", contents[0].GenPrompt)
	}
}

func TestLLMFillerRejectsMissingSections(t *testing.T) {
	f := NewLLMFiller(nil, models.GenerateOptions{})

	if _, err := f.parse(llmSectionText(2), 6); err == nil {
		t.Fatal("段落数不足应报错")
	}
}

func TestLLMFillerRejectsMissingVisual(t *testing.T) {
	f := NewLLMFiller(nil, models.GenerateOptions{})

	text := "【镜头1】\n台词：只有台词\n"
	if _, err := f.parse(text, 1); err == nil {
		t.Fatal("缺少画面字段应报错")
	}
}

func TestLLMFillerPromptCarriesSkeleton(t *testing.T) {
	fc := newFillContextForTest()
	f := NewLLMFiller(nil, models.GenerateOptions{})

	prompt := f.buildPrompt(fc)

	if !strings.Contains(prompt, "光语AI") || !strings.Contains(prompt, fc.Archetype.Primary) {
		t.Fatalf("提示词缺少简报要素:\n%s", prompt)
	}
	for _, shot := range fc.Shots {
		marker := fmt.Sprintf("【镜头%d】", shot.Index)
		if !strings.Contains(prompt, marker) {
			t.Fatalf("提示词缺少镜头标记%s", marker)
		}
	}
}
