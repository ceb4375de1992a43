package services

import (
	"context"
	"strings"
	"testing"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"帮我生成一支30秒的脚本", "generate"},
		{"第三镜再调整一下", "revise"},
		{"主角这个人物太单薄了", "character"},
		{"你好呀", "chat"},
	}

	for _, tt := range tests {
		if got := detectIntent(tt.message); got != tt.want {
			t.Fatalf("detectIntent(%q) = %s, want %s", tt.message, got, tt.want)
		}
	}
}

func TestSendMessageFallsBackToMock(t *testing.T) {
	s := NewAgentService(NewEmptyLLMService())

	reply, err := s.SendMessage(context.Background(), "帮我生成脚本", nil)
	if err != nil {
		t.Fatalf("离线模式不应报错: %v", err)
	}
	if !reply.Mocked {
		t.Fatal("LLM未就绪应返回预置回复")
	}
	if reply.Intent != "generate" {
		t.Fatalf("意图 = %s, want generate", reply.Intent)
	}
	if reply.Reply == "" {
		t.Fatal("预置回复为空")
	}
}

func TestBuildAgentPromptTrimsHistory(t *testing.T) {
	history := make([]AgentMessage, 10)
	for i := range history {
		history[i] = AgentMessage{Role: "user", Content: "第" + string(rune('0'+i)) + "条"}
	}

	prompt := buildAgentPrompt("最新一条", history)

	if strings.Contains(prompt, "第0条") || strings.Contains(prompt, "第3条") {
		t.Fatalf("超出窗口的历史不应进入提示词:\n%s", prompt)
	}
	if !strings.Contains(prompt, "第4条") || !strings.Contains(prompt, "第9条") {
		t.Fatalf("窗口内历史缺失:\n%s", prompt)
	}
	if !strings.Contains(prompt, "user：最新一条") {
		t.Fatalf("当前消息缺失:\n%s", prompt)
	}
}
