// internal/services/llm_service.go
package services

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/byqzydy/story-ad-sub000/internal/config"
	"github.com/byqzydy/story-ad-sub000/internal/llm"
)

var ErrLLMNotReady = errors.New("llm service not ready")

// DefaultCompletionTimeout 单次生成调用的默认超时
const DefaultCompletionTimeout = 30 * time.Second

// LLMService 提供统一的大语言模型调用接口
// 整个生成流程只存在这一个I/O边界，超时与重试都收敛在这里
type LLMService struct {
	providerMutex sync.RWMutex
	provider      llm.Provider
	providerName  string
	isReady       bool
	readyState    string

	cache *llmCache
}

type llmCache struct {
	mutex      sync.RWMutex
	entries    map[string]*cacheEntry
	expiration time.Duration
}

type cacheEntry struct {
	text      string
	createdAt time.Time
}

// NewLLMService 按当前配置创建LLM服务，提供者初始化失败时服务降级为未就绪
func NewLLMService() *LLMService {
	s := &LLMService{
		readyState: "未配置",
		cache: &llmCache{
			entries:    make(map[string]*cacheEntry),
			expiration: 10 * time.Minute,
		},
	}

	cfg := config.GetCurrentConfig()
	if cfg.LLMProvider != "" {
		if err := s.UpdateProvider(cfg.LLMProvider, cfg.LLMConfig); err != nil {
			s.readyState = fmt.Sprintf("提供者初始化失败: %v", err)
		}
	}

	return s
}

// NewEmptyLLMService 创建未就绪的LLM服务，供测试与离线模式使用
func NewEmptyLLMService() *LLMService {
	return &LLMService{
		readyState: "未配置",
		cache: &llmCache{
			entries:    make(map[string]*cacheEntry),
			expiration: 10 * time.Minute,
		},
	}
}

// UpdateProvider 切换底层提供者
func (s *LLMService) UpdateProvider(name string, providerConfig map[string]string) error {
	provider, err := llm.GetProvider(name, providerConfig)
	if err != nil {
		return err
	}

	s.providerMutex.Lock()
	defer s.providerMutex.Unlock()
	s.provider = provider
	s.providerName = name
	s.isReady = true
	s.readyState = "就绪"
	return nil
}

// IsReady 返回服务是否可以发起真实调用
func (s *LLMService) IsReady() bool {
	s.providerMutex.RLock()
	defer s.providerMutex.RUnlock()
	return s.isReady
}

// ReadyState 返回可读的就绪状态描述
func (s *LLMService) ReadyState() string {
	s.providerMutex.RLock()
	defer s.providerMutex.RUnlock()
	return s.readyState
}

// ProviderName 返回当前提供者名称
func (s *LLMService) ProviderName() string {
	s.providerMutex.RLock()
	defer s.providerMutex.RUnlock()
	return s.providerName
}

// CompleteText 发起一次文本生成
// 命中缓存直接返回；瞬时失败重试一次；调用方通过ctx控制取消与超时
func (s *LLMService) CompleteText(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.providerMutex.RLock()
	provider := s.provider
	ready := s.isReady
	s.providerMutex.RUnlock()

	if !ready || provider == nil {
		return "", ErrLLMNotReady
	}

	key := cacheKey(req)
	if text, ok := s.cache.get(key); ok {
		return text, nil
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCompletionTimeout)
		defer cancel()
	}

	resp, err := provider.CompleteText(ctx, req)
	if err != nil && ctx.Err() == nil {
		// 瞬时失败重试一次，超时/取消不重试
		resp, err = provider.CompleteText(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("调用%s失败: %w", provider.GetName(), err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("%s返回了空响应", provider.GetName())
	}

	s.cache.put(key, resp.Text)
	return resp.Text, nil
}

func cacheKey(req llm.CompletionRequest) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(req.Model+"|"+req.SystemPrompt+"|"+req.Prompt)))
}

func (c *llmCache) get(key string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	entry, ok := c.entries[key]
	if !ok || time.Since(entry.createdAt) > c.expiration {
		return "", false
	}
	return entry.text, true
}

func (c *llmCache) put(key, text string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[key] = &cacheEntry{text: text, createdAt: time.Now()}
}
