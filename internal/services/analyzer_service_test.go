package services

import (
	"reflect"
	"testing"
)

func TestExtractCharacterCount(t *testing.T) {
	s := NewAnalyzerService()

	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{"empty prompt falls back to default", "", 2},
		{"no count mentioned falls back to default", "一个安静的雨夜，他推开了那扇门", 2},
		{"chinese numeral with suffix", "需要三个角色，一个工程师和一个AI助手", 3},
		{"arabic numeral with suffix", "这支片子要5个人同框", 5},
		{"must-have prefix", "必须有 2 个主要人物出场", 2},
		{"gong prefix chinese numeral", "共两个角色贯穿全片", 2},
		{"oversized count clamped to max", "共20个角色轮番登场", 10},
		{"zero clamped to min", "0个角色也行", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ExtractCharacterCount(tt.prompt); got != tt.want {
				t.Fatalf("ExtractCharacterCount(%q) = %d, want %d", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestExtractCharacterNames(t *testing.T) {
	s := NewAnalyzerService()

	tests := []struct {
		name   string
		prompt string
		count  int
		want   []string
	}{
		{
			// 非贪婪捕获不能把后续动作吞进名字里
			name:   "name followed by action verb",
			prompt: "角色小明走向窗边",
			count:  3,
			want:   []string{"小明"},
		},
		{
			name:   "names ordered by first appearance",
			prompt: "名叫阿原。珍妮说：「跑起来。」",
			count:  3,
			want:   []string{"阿原", "珍妮"},
		},
		{
			name:   "count caps the result",
			prompt: "名叫阿原。珍妮说：「跑起来。」",
			count:  1,
			want:   []string{"阿原"},
		},
		{
			name:   "pronouns filtered as noise",
			prompt: "我们说好了一起去看海",
			count:  3,
			want:   []string{},
		},
		{
			name:   "empty prompt yields nothing",
			prompt: "",
			count:  3,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExtractCharacterNames(tt.prompt, tt.count)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractCharacterNames(%q, %d) = %v, want %v", tt.prompt, tt.count, got, tt.want)
			}
		})
	}
}

func TestExtractCharacterNamesDeduplicates(t *testing.T) {
	s := NewAnalyzerService()

	got := s.ExtractCharacterNames("主角林深，林深说：「就是现在。」", 5)
	if len(got) != 1 || got[0] != "林深" {
		t.Fatalf("expected single deduplicated name, got %v", got)
	}
}

func TestClampCount(t *testing.T) {
	if got := clampCount(-3); got != 1 {
		t.Fatalf("clampCount(-3) = %d, want 1", got)
	}
	if got := clampCount(7); got != 7 {
		t.Fatalf("clampCount(7) = %d, want 7", got)
	}
	if got := clampCount(99); got != MaxCharacterCount {
		t.Fatalf("clampCount(99) = %d, want %d", got, MaxCharacterCount)
	}
}
