package services

import (
	"context"
	"strings"
	"testing"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

func newScriptServiceForTest() *ScriptService {
	analyzer := NewAnalyzerService()
	return NewScriptService(
		analyzer,
		NewArchetypeService(),
		NewCharacterService(analyzer),
		NewStoryboardService(),
		nil, // 无LLM服务时走确定性模板填充
	)
}

func testBrief() models.Brief {
	return models.Brief{
		ProductName:        "光语AI",
		ProductTone:        "温暖 人文",
		ProductDescription: "全天候的智能语音伴侣",
		CoreConcept:        "科技让陪伴更近",
		EndingEmotion:      "温暖希望",
		StoryPrompt:        "需要三个角色，一个工程师和一个AI助手",
		VisualStyle:        "电影感",
		Duration:           "30s",
		AspectRatio:        "9:16",
		Voiceover:          true,
		ProductVisibility:  30,
		Audience:           models.Audience{Gender: "不限", Age: "18-25"},
	}
}

func TestGenerateScriptEndToEnd(t *testing.T) {
	s := newScriptServiceForTest()

	result := s.GenerateScript(context.Background(), testBrief(), models.GenerateOptions{})

	if !result.Success {
		t.Fatalf("生成失败: %s", result.Error)
	}
	if result.Version != "V1" {
		t.Fatalf("版本 = %s, want V1", result.Version)
	}
	if result.Archetype != "她型" {
		t.Fatalf("原型 = %s, want 她型", result.Archetype)
	}
	if len(result.ShotList) != 6 {
		t.Fatalf("镜头数 = %d, want 6", len(result.ShotList))
	}
	if len(result.Characters) != 3 {
		t.Fatalf("角色数 = %d, want 3", len(result.Characters))
	}

	productCount := 0
	for _, shot := range result.ShotList {
		if shot.ProductBearing {
			productCount++
		}
	}
	if productCount != 2 {
		t.Fatalf("产品镜头数 = %d, want 2", productCount)
	}
}

func TestGenerateScriptDocumentSkeleton(t *testing.T) {
	s := newScriptServiceForTest()

	result := s.GenerateScript(context.Background(), testBrief(), models.GenerateOptions{})
	if !result.Success {
		t.Fatalf("生成失败: %s", result.Error)
	}
	doc := result.Script

	for _, want := range []string{
		"# 光语AI × 她型 拍摄脚本",
		"版本：V1",
		"## 制作信息",
		"## 角色表",
		"## 场景表",
		"## 产品说明",
		"## 分镜脚本",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("文档缺少段落 %q", want)
		}
	}

	if got := strings.Count(doc, "### 镜头"); got != 6 {
		t.Fatalf("镜头小节数 = %d, want 6", got)
	}

	// 每个角色首次入画的镜头必须带人物介绍
	if got := strings.Count(doc, "【人物介绍】"); got != 3 {
		t.Fatalf("人物介绍条数 = %d, want 3", got)
	}

	// 电影感风格的主色进入后期提示，是后续色调修订的锚点
	if !strings.Contains(doc, "暖黄色") {
		t.Fatal("文档缺少风格主色")
	}
}

func TestGenerateScriptIsDeterministicWithoutLLM(t *testing.T) {
	s := newScriptServiceForTest()

	first := s.GenerateScript(context.Background(), testBrief(), models.GenerateOptions{})
	again := s.GenerateScript(context.Background(), testBrief(), models.GenerateOptions{})

	if first.Script != again.Script {
		t.Fatal("无LLM时同样简报应得到完全相同的文档")
	}
}

func TestGenerateScriptHonorsArchetypeHint(t *testing.T) {
	s := newScriptServiceForTest()

	brief := testBrief()
	brief.ArchetypeHint = "摔跤吧爸爸型"

	result := s.GenerateScript(context.Background(), brief, models.GenerateOptions{})
	if !result.Success {
		t.Fatalf("生成失败: %s", result.Error)
	}
	if result.Archetype != "摔跤吧爸爸型" {
		t.Fatalf("原型倾向未生效: %s", result.Archetype)
	}
}

func TestGenerateScriptIgnoresUnknownArchetypeHint(t *testing.T) {
	s := newScriptServiceForTest()

	brief := testBrief()
	brief.ArchetypeHint = "不存在的原型"

	result := s.GenerateScript(context.Background(), brief, models.GenerateOptions{})
	if result.Archetype != "她型" {
		t.Fatalf("未知倾向应回到评分结果: %s", result.Archetype)
	}
}

func TestGenerateScriptVersionOption(t *testing.T) {
	s := newScriptServiceForTest()

	result := s.GenerateScript(context.Background(), testBrief(), models.GenerateOptions{Version: 3})
	if result.Version != "V3" {
		t.Fatalf("版本 = %s, want V3", result.Version)
	}
	if !strings.Contains(result.Script, "版本：V3") {
		t.Fatal("文档版本行未跟随选项")
	}
}

func TestGenerateScriptBriefNamesOverrideCount(t *testing.T) {
	s := newScriptServiceForTest()

	brief := testBrief()
	brief.StoryPrompt = ""
	brief.CharacterNames = []string{"一", "二", "三", "四", "五"}

	result := s.GenerateScript(context.Background(), brief, models.GenerateOptions{})
	if len(result.Characters) != 5 {
		t.Fatalf("简报点名5个角色, 实际合成%d个", len(result.Characters))
	}
}
