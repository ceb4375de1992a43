// internal/services/agent_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/byqzydy/story-ad-sub000/internal/llm"
)

// AgentService 对话式创意助理的后端
// LLM就绪时透传真实模型，否则按意图返回预置回复，
// 聊天界面在离线环境下依然可用
type AgentService struct {
	LLMService *LLMService
}

// NewAgentService 创建助理服务
func NewAgentService(llmService *LLMService) *AgentService {
	return &AgentService{LLMService: llmService}
}

// AgentMessage 一条对话消息
type AgentMessage struct {
	Role      string    `json:"role"` // "user" / "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// AgentReply 助理回复
type AgentReply struct {
	Reply   string                 `json:"reply"`
	Intent  string                 `json:"intent"`            // 识别出的意图
	Payload map[string]interface{} `json:"payload,omitempty"` // 结构化负载
	Mocked  bool                   `json:"mocked"`            // 是否为预置回复
}

const agentSystemPrompt = `你是广告创意助理，帮助用户完善产品信息、故事设定与脚本修改意见。回复保持简短、可执行。`

// SendMessage 处理一条用户消息
func (s *AgentService) SendMessage(ctx context.Context, message string, history []AgentMessage) (*AgentReply, error) {
	intent := detectIntent(message)

	if s.LLMService != nil && s.LLMService.IsReady() {
		prompt := buildAgentPrompt(message, history)
		text, err := s.LLMService.CompleteText(ctx, llm.CompletionRequest{
			Prompt:       prompt,
			SystemPrompt: agentSystemPrompt,
		})
		if err == nil {
			return &AgentReply{Reply: text, Intent: intent}, nil
		}
		// 外部调用失败时降级为预置回复，聊天界面不中断
	}

	return &AgentReply{
		Reply:  mockReply(intent),
		Intent: intent,
		Mocked: true,
	}, nil
}

// detectIntent 关键词粗分意图
func detectIntent(message string) string {
	switch {
	case strings.Contains(message, "生成") || strings.Contains(message, "脚本"):
		return "generate"
	case strings.Contains(message, "修改") || strings.Contains(message, "调整"):
		return "revise"
	case strings.Contains(message, "角色") || strings.Contains(message, "人物"):
		return "character"
	default:
		return "chat"
	}
}

func mockReply(intent string) string {
	switch intent {
	case "generate":
		return "好的，请确认产品名称、时长和故事设定，我就可以为你生成完整的拍摄脚本。"
	case "revise":
		return "收到修改意见。告诉我想调整的具体镜头或整体方向，我会生成新的版本。"
	case "character":
		return "角色可以在故事设定里直接点名，也可以交给我按叙事原型自动安排。"
	default:
		return "我在。可以聊聊你的产品和想讲的故事，比如核心概念与结尾情绪。"
	}
}

func buildAgentPrompt(message string, history []AgentMessage) string {
	var b strings.Builder
	// 只带最近几轮，控制提示词长度
	start := 0
	if len(history) > 6 {
		start = len(history) - 6
	}
	for _, m := range history[start:] {
		b.WriteString(m.Role + "：" + m.Content + "\n")
	}
	b.WriteString("user：" + message)
	return b.String()
}
