package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/byqzydy/story-ad-sub000/internal/models"
)

func newCharacterServiceForTest() (*CharacterService, *ArchetypeService) {
	return NewCharacterService(NewAnalyzerService()), NewArchetypeService()
}

func TestSynthesizeSlicesStayAligned(t *testing.T) {
	character, archetype := newCharacterServiceForTest()
	matrix := archetype.FindArchetype("黑客帝国型")

	for count := 1; count <= 10; count++ {
		cast := character.Synthesize(matrix, "星尘手机", models.Audience{Age: "26-35"}, count, "")

		if len(cast.Names) != count || len(cast.Roles) != count ||
			len(cast.Descriptions) != count || len(cast.Arcs) != count {
			t.Fatalf("count=%d: 切片长度不对齐 names=%d roles=%d descs=%d arcs=%d",
				count, len(cast.Names), len(cast.Roles), len(cast.Descriptions), len(cast.Arcs))
		}

		seen := make(map[string]bool)
		for _, name := range cast.Names {
			if name == "" {
				t.Fatalf("count=%d: 出现空角色名", count)
			}
			if seen[name] {
				t.Fatalf("count=%d: 角色名重复 %q", count, name)
			}
			seen[name] = true
		}
	}
}

func TestSynthesizeAIProductNaming(t *testing.T) {
	character, archetype := newCharacterServiceForTest()
	her := archetype.FindArchetype("她型")

	cast := character.Synthesize(her, "光语AI", models.Audience{Age: "18-25"}, 3, "")

	if cast.Names[0] != "林深" {
		t.Fatalf("AI产品主角名 = %q, want 林深", cast.Names[0])
	}
	if cast.Names[1] != "光语AI助手" {
		t.Fatalf("AI产品第二角色 = %q, want 光语AI助手", cast.Names[1])
	}
}

func TestSynthesizeInterpolatesTemplate(t *testing.T) {
	character, archetype := newCharacterServiceForTest()
	her := archetype.FindArchetype("她型")

	cast := character.Synthesize(her, "光语AI", models.Audience{Age: "18-25"}, 2, "")

	// 首位角色描述来自原型模板，年龄段与产品名占位符必须被替换
	desc := cast.Descriptions[0]
	if !strings.Contains(desc, "二十出头") || !strings.Contains(desc, "光语AI") {
		t.Fatalf("模板未插值: %q", desc)
	}
	if strings.Contains(desc, "{age}") || strings.Contains(desc, "{product}") {
		t.Fatalf("占位符残留: %q", desc)
	}
}

func TestSynthesizeKeepsExtractedNames(t *testing.T) {
	character, archetype := newCharacterServiceForTest()
	forrest := archetype.FindArchetype("阿甘正传型")

	cast := character.Synthesize(forrest, "跑鞋", models.Audience{},
		2, "名叫阿原。珍妮说：「跑起来。」")

	want := []string{"阿原", "珍妮"}
	if !reflect.DeepEqual(cast.Names, want) {
		t.Fatalf("抽取到的角色名被改写: got %v, want %v", cast.Names, want)
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	character, archetype := newCharacterServiceForTest()
	matrix := archetype.FindArchetype("楚门的世界型")

	first := character.Synthesize(matrix, "云台相机", models.Audience{Age: "36-45"}, 4, "一个普通的早晨")
	for i := 0; i < 10; i++ {
		again := character.Synthesize(matrix, "云台相机", models.Audience{Age: "36-45"}, 4, "一个普通的早晨")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("同样输入得到不同阵容:\n%v\n%v", first, again)
		}
	}
}

func TestProtagonistNameDrawsFromGenericBank(t *testing.T) {
	character, _ := newCharacterServiceForTest()

	name := character.protagonistName("跑鞋", "清晨的公路")
	found := false
	for _, candidate := range genericNameBank {
		if candidate == name {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("非AI产品主角名 %q 不在通用名库里", name)
	}
	if again := character.protagonistName("跑鞋", "清晨的公路"); again != name {
		t.Fatalf("主角名不稳定: %q vs %q", name, again)
	}
}

func TestAgeBracket(t *testing.T) {
	if got := ageBracket("18-25"); got != "二十出头" {
		t.Fatalf("ageBracket(18-25) = %q", got)
	}
	if got := ageBracket("未知标签"); got != defaultAgeBracket {
		t.Fatalf("ageBracket(未知标签) = %q, want %q", got, defaultAgeBracket)
	}
}

