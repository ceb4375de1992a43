package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHardTechConcept(t *testing.T) {
	s := NewArchetypeService()

	// 概念双命中+情绪主命中，黑客帝国型远超其他原型
	result := s.Classify("代码与觉醒", "智能终端", "掌控自信", "硬核 科技感")

	assert.Equal(t, "黑客帝国型", result.Primary)
	assert.Equal(t, "盗梦空间型", result.Secondary)
	assert.Equal(t, "90/10", result.BlendRatio)
}

func TestClassifyFallsBackToDefault(t *testing.T) {
	s := NewArchetypeService()

	result := s.Classify("", "", "", "")

	assert.Equal(t, DefaultArchetypeID, result.Primary)
	assert.Equal(t, "爱乐之城型", result.Secondary)
	assert.Equal(t, "70/30", result.BlendRatio)
}

func TestClassifyTieBreaksByCatalogOrder(t *testing.T) {
	s := NewArchetypeService()

	// 孤独与代码各+2，平局时取目录里先出现的她型
	result := s.Classify("孤独的代码", "", "", "")

	assert.Equal(t, "她型", result.Primary)
}

func TestClassifyIsDeterministic(t *testing.T) {
	s := NewArchetypeService()

	first := s.Classify("梦境与悬念", "香氛", "惊喜好奇", "")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, s.Classify("梦境与悬念", "香氛", "惊喜好奇", ""))
	}
}

func TestBlendRatioToneRules(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		toneWords string
		want      string
	}{
		{"hard tech tone", "她型", "硬核", "90/10"},
		{"tech feel tone", "阿甘正传型", "科技感", "90/10"},
		{"warm tone with warm primary", "她型", "温暖 人文", "70/30"},
		{"warm tone with cold primary", "黑客帝国型", "温暖", "80/20"},
		{"humanist tone with cold primary", "爱乐之城型", "人文", "80/20"},
		{"no tone words", "盗梦空间型", "轻快", "70/30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blendRatio(tt.primary, tt.toneWords))
		})
	}
}

func TestFindArchetype(t *testing.T) {
	s := NewArchetypeService()

	hacker := s.FindArchetype("黑客帝国型")
	assert.Equal(t, "黑客帝国型", hacker.ID)
	assert.NotEmpty(t, hacker.Templates)

	// 未知ID兜底到默认原型
	fallback := s.FindArchetype("不存在的原型")
	assert.Equal(t, DefaultArchetypeID, fallback.ID)
}

func TestComplementMapCoversCatalog(t *testing.T) {
	for _, a := range archetypeCatalog {
		secondary, ok := complementMap[a.ID]
		assert.True(t, ok, "原型%s缺少互补副原型", a.ID)
		assert.NotEqual(t, a.ID, secondary)
	}
}
